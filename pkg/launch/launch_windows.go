//go:build windows

package launch

// ensureExecutable is a no-op on Windows, where execute permission bits
// do not apply.
func ensureExecutable(path string) error {
	return nil
}
