// Package platform normalizes host-reported OS and architecture strings
// into the pair used for delegate binary naming.
package platform

import (
	"fmt"
	"strings"
)

// OS is a normalized operating system name.
type OS string

// Arch is a normalized CPU architecture name.
type Arch string

const (
	Darwin  OS = "darwin"
	Linux   OS = "linux"
	Windows OS = "windows"

	AMD64 Arch = "amd64"
	ARM64 Arch = "arm64"
)

// Platform is the normalized (os, arch) pair for the host. Both fields
// always hold a known value; Identify fails rather than produce a partial
// or "unknown" platform.
type Platform struct {
	OS   OS
	Arch Arch
}

// UnsupportedOSError indicates the host OS is not one the delegate binary
// is built for.
type UnsupportedOSError struct {
	Raw string // the OS string as reported by the host
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf("Unsupported operating system: %s", e.Raw)
}

// UnsupportedArchError indicates the host CPU architecture is not one the
// delegate binary is built for.
type UnsupportedArchError struct {
	Raw string // the machine string as reported by the host
}

func (e *UnsupportedArchError) Error() string {
	return fmt.Sprintf("Unsupported architecture: %s", e.Raw)
}

var osNames = map[string]OS{
	"darwin":  Darwin,
	"linux":   Linux,
	"windows": Windows,
}

var archNames = map[string]Arch{
	"x86_64":  AMD64,
	"amd64":   AMD64,
	"arm64":   ARM64,
	"aarch64": ARM64,
}

// Identify maps raw host-reported OS and machine strings to a Platform.
// Matching is case-insensitive and exact: there is no fallback to a
// "closest" platform, since running a binary built for the wrong
// architecture would fail in far worse ways than this error does.
func Identify(rawOS, rawArch string) (Platform, error) {
	osName, ok := osNames[strings.ToLower(rawOS)]
	if !ok {
		return Platform{}, &UnsupportedOSError{Raw: rawOS}
	}

	arch, ok := archNames[strings.ToLower(rawArch)]
	if !ok {
		return Platform{}, &UnsupportedArchError{Raw: rawArch}
	}

	return Platform{OS: osName, Arch: arch}, nil
}
