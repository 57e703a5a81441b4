package flowerctl

import (
	"fmt"
	"path/filepath"
)

// CreateVenv creates the app directory (idempotent), builds the isolated
// runtime environment inside it, and installs the dashboard and task-queue
// packages.
func (in *Installer) CreateVenv(req Request) error {
	if err := ensureDir(req.AppDir, 0o755); err != nil {
		return fmt.Errorf("create app dir: %w", err)
	}
	venv := req.Venv()
	if err := in.Runner.Run("python3", "-m", "venv", venv); err != nil {
		return err
	}
	pip := filepath.Join(venv, "bin", "pip")
	if err := in.Runner.Run(pip, "install", "--upgrade", "pip", "setuptools", "wheel"); err != nil {
		return err
	}
	if err := in.Runner.Run(pip, "install", "celery[redis]", "flower"); err != nil {
		return err
	}
	in.Log.Debugw("virtualenv ready", "venv", venv)
	fmt.Printf("created venv at %s and installed celery+flower\n", venv)
	return nil
}
