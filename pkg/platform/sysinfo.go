package platform

import "runtime"

// SysInfo abstracts the host's platform report for testability.
type SysInfo interface {
	OS() string
	Arch() string
}

// RealSysInfo reports the platform the launcher was built for, which is
// the platform it is running on.
type RealSysInfo struct{}

func (r *RealSysInfo) OS() string   { return runtime.GOOS }
func (r *RealSysInfo) Arch() string { return runtime.GOARCH }
