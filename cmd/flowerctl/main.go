package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Mohanad7770/flower-installer/internal/flowerctl"
	"github.com/Mohanad7770/flower-installer/internal/tui"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 && args[0] == "setup" {
		if err := tui.StartWizard(); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if err := flowerctl.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var cmdErr *flowerctl.CommandError
		if errors.As(err, &cmdErr) {
			os.Exit(cmdErr.Code)
		}
		os.Exit(1)
	}
}
