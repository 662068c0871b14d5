//go:build unix

package launch

import "os"

// ensureExecutable sets 0755 on the binary. Some installation paths write
// the delegate without execute bits; fixing the mode here is idempotent
// and cheap when the bits are already set.
func ensureExecutable(path string) error {
	return os.Chmod(path, 0o755)
}
