package flowerctl

import (
	"fmt"
	"os"
)

// setupApache renders the vhost, enables the proxy modules and the site,
// and reloads Apache.
func (in *Installer) setupApache(domain, ipAllow string, useAuth bool) error {
	conf, err := Render(TplApacheSite, siteContext(domain, ipAllow, useAuth))
	if err != nil {
		return fmt.Errorf("render apache vhost: %w", err)
	}
	if err := os.WriteFile(in.Paths.ApacheSite, []byte(conf), 0o644); err != nil {
		return fmt.Errorf("write apache vhost: %w", err)
	}
	if err := in.Runner.Run("a2enmod", "proxy", "proxy_http", "proxy_wstunnel", "headers"); err != nil {
		return err
	}
	if err := in.Runner.Run("a2ensite", "flower"); err != nil {
		return err
	}
	if err := in.Runner.Run("systemctl", "reload", "apache2"); err != nil {
		return err
	}
	in.Log.Debugw("apache vhost written", "path", in.Paths.ApacheSite)
	fmt.Printf("Apache vhost created for http://%s\n", domain)
	return nil
}
