package flowerctl

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner abstracts the external commands the installer shells out to, so
// tests can record invocations instead of touching a real host.
type Runner interface {
	// Run executes a command, echoing it first, and fails with the
	// subprocess's exit code on non-zero exit.
	Run(name string, args ...string) error
	// Capture runs a command and returns its combined output.
	Capture(name string, args ...string) (string, error)
	// BestEffort runs a command and discards any failure. This is the
	// uninstall path's explicit "ignore failure" policy.
	BestEffort(name string, args ...string)
}

// CommandError carries a failed command's exit code so main can propagate
// it as the process exit status.
type CommandError struct {
	Cmd  string
	Code int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed (exit %d): %s", e.Code, e.Cmd)
}

type execRunner struct {
	log *zap.SugaredLogger
}

func NewRunner(log *zap.SugaredLogger) Runner {
	return &execRunner{log: log}
}

func (r *execRunner) Run(name string, args ...string) error {
	line := commandLine(name, args)
	fmt.Printf("→ %s\n", line)
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		code := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		r.log.Debugw("command failed", "cmd", line, "exit", code)
		return &CommandError{Cmd: line, Code: code}
	}
	return nil
}

func (r *execRunner) Capture(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	return string(out), nil
}

func (r *execRunner) BestEffort(name string, args ...string) {
	if err := r.Run(name, args...); err != nil {
		r.log.Debugw("ignoring failure", "cmd", commandLine(name, args), "error", err)
	}
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
