package figmaquery_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figma-tools/figma-query/pkg/launcher"
	"github.com/figma-tools/figma-query/pkg/locate"
	"github.com/figma-tools/figma-query/pkg/platform"
)

// Integration tests verify the Real* adapters against the actual system.
// Unit tests in each package cover edge cases; these tests run the launcher
// end to end with a stub delegate on disk.

func TestIntegration_IdentifyHost(t *testing.T) {
	info := &platform.RealSysInfo{}

	p, err := platform.Identify(info.OS(), info.Arch())

	// Test hosts are always one of the supported platforms.
	require.NoError(t, err)
	assert.NotEmpty(t, p.OS)
	assert.NotEmpty(t, p.Arch)
}

func TestIntegration_LocateOnDisk(t *testing.T) {
	p, err := platform.Identify(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	// Lay out an install prefix with the binary in the share directory,
	// the last candidate, to prove the real search walks the full order.
	prefix := t.TempDir()
	launcherDir := filepath.Join(prefix, "bin")
	shareDir := filepath.Join(prefix, "share", "figma-query", "bin")
	require.NoError(t, os.MkdirAll(launcherDir, 0o755))
	require.NoError(t, os.MkdirAll(shareDir, 0o755))

	target := filepath.Join(shareDir, locate.BinaryName(p))
	require.NoError(t, os.WriteFile(target, []byte("#!/bin/sh\n"), 0o755))

	got, err := locate.Locate(&locate.RealFileSystem{}, launcherDir, p, runtime.GOOS, runtime.GOARCH)

	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestIntegration_LauncherRunsDelegate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub delegate is a shell script")
	}

	p, err := platform.Identify(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	prefix := t.TempDir()
	launcherDir := filepath.Join(prefix, "bin")
	binDir := filepath.Join(launcherDir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))

	// Non-executable on purpose: the chmod fix-up must repair it.
	target := filepath.Join(binDir, locate.BinaryName(p))
	require.NoError(t, os.WriteFile(target, []byte("#!/bin/sh\nexit 42\n"), 0o600))

	l := launcher.New(launcherDir)
	l.Stderr = &bytes.Buffer{}

	assert.Equal(t, 42, l.Run([]string{"--version"}))
}

func TestIntegration_LauncherReportsMissingBinary(t *testing.T) {
	launcherDir := filepath.Join(t.TempDir(), "bin")
	require.NoError(t, os.MkdirAll(launcherDir, 0o755))

	l := launcher.New(launcherDir)
	var stderr bytes.Buffer
	l.Stderr = &stderr

	assert.Equal(t, 1, l.Run(nil))
	assert.Contains(t, stderr.String(), "figma-query binary not found")
}
