package flowerctl

import (
	"fmt"
	"os"
)

// RegisterService writes the systemd unit, reloads the unit database, and
// enables and (re)starts the dashboard service.
func (in *Installer) RegisterService(req Request) error {
	unit, err := Render(TplSystemdUnit, map[string]any{
		"project_dir":       req.AppDir,
		"venv":              req.Venv(),
		"redis_url":         req.RedisURL,
		"redis_backend_url": req.RedisBackendURL,
	})
	if err != nil {
		return fmt.Errorf("render systemd unit: %w", err)
	}
	if err := os.WriteFile(in.Paths.SystemdUnit, []byte(unit), 0o644); err != nil {
		return fmt.Errorf("write systemd unit: %w", err)
	}
	if err := in.Runner.Run("systemctl", "daemon-reload"); err != nil {
		return err
	}
	if err := in.Runner.Run("systemctl", "enable", "flower"); err != nil {
		return err
	}
	if err := in.Runner.Run("systemctl", "restart", "flower"); err != nil {
		return err
	}
	in.Log.Debugw("systemd unit registered", "path", in.Paths.SystemdUnit)
	fmt.Println("Flower systemd service enabled and started")
	return nil
}
