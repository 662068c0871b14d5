// Package locate resolves the delegate binary path for a host platform.
//
// The binary name figma-query-{os}-{arch}[.exe] is the contract between the
// installer and this launcher; the installer places the binary in one of the
// candidate directories returned by SearchDirs.
package locate

import (
	"fmt"
	"path/filepath"

	"github.com/figma-tools/figma-query/pkg/platform"
)

// NotFoundError indicates no candidate directory held the delegate binary.
type NotFoundError struct {
	RawOS      string // OS as reported by the host, for diagnostics
	RawArch    string // machine as reported by the host, for diagnostics
	BinaryName string // the filename that was searched for
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("figma-query binary not found for %s/%s. Expected: %s",
		e.RawOS, e.RawArch, e.BinaryName)
}

// BinaryName returns the delegate binary filename for a platform.
func BinaryName(p platform.Platform) string {
	name := fmt.Sprintf("figma-query-%s-%s", p.OS, p.Arch)
	if p.OS == platform.Windows {
		name += ".exe"
	}
	return name
}

// SearchDirs returns the ordered candidate directories for a launcher
// installed at launcherDir. A launcher at $PREFIX/bin/figma-query yields
// $PREFIX for the parent, so the third candidate is the conventional
// $PREFIX/share/figma-query/bin data directory.
func SearchDirs(launcherDir string) []string {
	parent := filepath.Dir(launcherDir)
	return []string{
		filepath.Join(launcherDir, "bin"),
		filepath.Join(parent, "bin"),
		filepath.Join(parent, "share", "figma-query", "bin"),
	}
}

// Locate returns the path of the delegate binary for p, checking each
// candidate directory in order and returning the first that contains it.
// rawOS and rawArch are carried into the error for diagnostics only.
func Locate(fsys FileSystem, launcherDir string, p platform.Platform, rawOS, rawArch string) (string, error) {
	name := BinaryName(p)

	for _, dir := range SearchDirs(launcherDir) {
		candidate := filepath.Join(dir, name)
		if _, err := fsys.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", &NotFoundError{RawOS: rawOS, RawArch: rawArch, BinaryName: name}
}
