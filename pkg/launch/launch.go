// Package launch spawns the delegate binary and propagates its exit status.
package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// ExitStatus is the outcome of the delegate process: either a normal exit
// with a code, or termination by a signal. The two are kept separate here
// and collapsed to a single integer only at the program boundary.
type ExitStatus struct {
	Code     int
	Signal   syscall.Signal
	Signaled bool
}

// NormalExit returns the status for a process that exited on its own.
func NormalExit(code int) ExitStatus {
	return ExitStatus{Code: code}
}

// Signaled returns the status for a process terminated by a signal.
func Signaled(sig syscall.Signal) ExitStatus {
	return ExitStatus{Signal: sig, Signaled: true}
}

// ExitCode maps the status to the launcher's own exit code, using the
// shell convention 128+signal for signal-terminated children.
func (s ExitStatus) ExitCode() int {
	if s.Signaled {
		return 128 + int(s.Signal)
	}
	return s.Code
}

// ProcessRunner abstracts child process execution for testability.
type ProcessRunner interface {
	// Run spawns path with the given argument list (not including the
	// program name) and environment, waits for it to finish, and returns
	// its exit status. The child shares the launcher's stdin, stdout and
	// stderr. A non-nil error means the process could not be started.
	Run(path string, args []string, env []string) (ExitStatus, error)
}

// RealProcessRunner runs the delegate as an actual child process.
type RealProcessRunner struct{}

// Run executes the binary and blocks until it terminates. No timeout is
// applied: the launcher waits exactly as long as a direct invocation would.
func (r *RealProcessRunner) Run(path string, args []string, env []string) (ExitStatus, error) {
	cmd := exec.Command(path, args...) // #nosec G204 -- the path was resolved from the fixed install layout and args are the user's own
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return NormalExit(0), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return Signaled(ws.Signal()), nil
		}
		return NormalExit(exitErr.ExitCode()), nil
	}

	return ExitStatus{}, fmt.Errorf("failed to start %s: %w", path, err)
}

// Delegate ensures the binary is executable, then hands control to it:
// the child receives args verbatim and the environment unmodified, and its
// exit status becomes the launcher's. A chmod failure is reported on the
// returned warning but never blocks delegation, since the binary may
// already be executable.
func Delegate(runner ProcessRunner, binary string, args []string, env []string) (ExitStatus, string, error) {
	var warning string
	if err := ensureExecutable(binary); err != nil {
		warning = fmt.Sprintf("could not mark %s executable: %v", binary, err)
	}

	status, err := runner.Run(binary, args, env)
	if err != nil {
		return ExitStatus{}, warning, err
	}
	return status, warning, nil
}
