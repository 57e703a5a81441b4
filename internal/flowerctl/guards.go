package flowerctl

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// EnsureRoot aborts the run unless the process has superuser identity.
func EnsureRoot() error {
	if os.Geteuid() != 0 {
		return errors.New("this command must be run as root (sudo)")
	}
	return nil
}

// WhichOrFail checks that binary is resolvable on PATH and returns an
// error carrying the install hint when it is not.
func WhichOrFail(binary, installHint string) error {
	return whichOrFail(exec.LookPath, binary, installHint)
}

func whichOrFail(lookPath func(string) (string, error), binary, installHint string) error {
	if _, err := lookPath(binary); err != nil {
		return fmt.Errorf("missing required dependency: %s. %s", binary, installHint)
	}
	return nil
}
