// Package launcher wires platform identification, binary location and
// process delegation into the single linear flow behind the figma-query
// command.
package launcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jwalton/go-supportscolor"

	"github.com/figma-tools/figma-query/pkg/launch"
	"github.com/figma-tools/figma-query/pkg/locate"
	"github.com/figma-tools/figma-query/pkg/platform"
)

var (
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		red, reset = "", ""
	}
}

// Launcher resolves and runs the delegate binary. All system access goes
// through the injected adapters so the flow is testable without touching
// the host.
type Launcher struct {
	Sys    platform.SysInfo     // host platform report
	FS     locate.FileSystem    // existence checks for candidate paths
	Runner launch.ProcessRunner // child process execution
	Dir    string               // directory containing the launcher executable
	Env    []string             // environment to pass through to the child
	Stderr io.Writer            // destination for launcher diagnostics
}

// New returns a Launcher backed by the real system. dir is the directory
// the launcher executable was installed to.
func New(dir string) *Launcher {
	return &Launcher{
		Sys:    &platform.RealSysInfo{},
		FS:     &locate.RealFileSystem{},
		Runner: &launch.RealProcessRunner{},
		Dir:    dir,
		Env:    os.Environ(),
		Stderr: os.Stderr,
	}
}

// Run resolves the delegate for the host platform and executes it with
// args, returning the exit code the launcher should terminate with: the
// child's own code on delegation, 1 on identification or location failure.
func (l *Launcher) Run(args []string) int {
	rawOS, rawArch := l.Sys.OS(), l.Sys.Arch()

	p, err := platform.Identify(rawOS, rawArch)
	if err != nil {
		l.errorf("%v", err)
		return 1
	}

	binary, err := locate.Locate(l.FS, l.Dir, p, rawOS, rawArch)
	if err != nil {
		l.errorf("%v", err)
		return 1
	}

	status, warning, err := launch.Delegate(l.Runner, binary, args, l.Env)
	if warning != "" {
		fmt.Fprintf(l.Stderr, "warning: %s\n", warning)
	}
	if err != nil {
		l.errorf("%v", err)
		return 1
	}

	return status.ExitCode()
}

func (l *Launcher) errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.Stderr, "%sError:%s %s\n", red, reset, fmt.Sprintf(format, args...))
}

// ExecutableDir returns the directory holding the running launcher binary,
// with symlinks resolved so the search anchors at the install location
// rather than at a symlink farm like /usr/local/bin.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return filepath.Dir(resolved), nil
}
