package flowerctl

import (
	"fmt"
	"os"
)

// setupNginx renders the server block, swaps the sites-enabled symlink,
// validates the config, and reloads nginx. A failing nginx -t or reload
// aborts the pipeline but leaves the written file in place.
func (in *Installer) setupNginx(domain, ipAllow string, useAuth bool) error {
	conf, err := Render(TplNginxSite, siteContext(domain, ipAllow, useAuth))
	if err != nil {
		return fmt.Errorf("render nginx server block: %w", err)
	}
	if err := os.WriteFile(in.Paths.NginxAvailable, []byte(conf), 0o644); err != nil {
		return fmt.Errorf("write nginx server block: %w", err)
	}
	if err := removeIfExists(in.Paths.NginxEnabled); err != nil {
		return fmt.Errorf("replace enabled symlink: %w", err)
	}
	if err := os.Symlink(in.Paths.NginxAvailable, in.Paths.NginxEnabled); err != nil {
		return fmt.Errorf("enable nginx site: %w", err)
	}
	if err := in.Runner.Run("nginx", "-t"); err != nil {
		return err
	}
	if err := in.Runner.Run("systemctl", "reload", "nginx"); err != nil {
		return err
	}
	in.Log.Debugw("nginx server block written", "path", in.Paths.NginxAvailable)
	fmt.Printf("Nginx server block created for http://%s\n", domain)
	return nil
}
