package flowerctl

import (
	"fmt"

	"go.uber.org/zap"
)

// Uninstaller reverses the service and site registration. Every external
// command runs in best-effort mode because one of the two web servers is
// typically absent; file removals are no-ops when the target is already
// gone.
type Uninstaller struct {
	Paths  Paths
	Runner Runner
	Log    *zap.SugaredLogger
}

func NewUninstaller(paths Paths, runner Runner, log *zap.SugaredLogger) *Uninstaller {
	return &Uninstaller{Paths: paths, Runner: runner, Log: log}
}

// Uninstall stops and removes the service and the web server config. With
// keepSite the site files are disabled but left on disk.
func (un *Uninstaller) Uninstall(keepSite bool) error {
	fmt.Println("Uninstalling Flower...")

	un.Runner.BestEffort("systemctl", "stop", "flower")
	un.Runner.BestEffort("systemctl", "disable", "flower")
	if err := removeIfExists(un.Paths.SystemdUnit); err != nil {
		return fmt.Errorf("remove systemd unit: %w", err)
	}

	if fileExists(un.Paths.ApacheSite) {
		un.Runner.BestEffort("a2dissite", "flower")
		if !keepSite {
			if err := removeIfExists(un.Paths.ApacheSite); err != nil {
				return fmt.Errorf("remove apache vhost: %w", err)
			}
		}
		un.Runner.BestEffort("systemctl", "reload", "apache2")
	}

	if linkExists(un.Paths.NginxEnabled) || fileExists(un.Paths.NginxAvailable) {
		if err := removeIfExists(un.Paths.NginxEnabled); err != nil {
			return fmt.Errorf("remove nginx symlink: %w", err)
		}
		if !keepSite {
			if err := removeIfExists(un.Paths.NginxAvailable); err != nil {
				return fmt.Errorf("remove nginx server block: %w", err)
			}
		}
		un.Runner.BestEffort("nginx", "-t")
		un.Runner.BestEffort("systemctl", "reload", "nginx")
	}

	fmt.Println("Uninstalled Flower service and web server config")
	return nil
}
