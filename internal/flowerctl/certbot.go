package flowerctl

import "fmt"

// IssueCertificate requests a TLS certificate for the domain through the
// system certbot, using the plugin matching the configured web server.
func (in *Installer) IssueCertificate(req Request) error {
	hint := fmt.Sprintf("Install with: apt-get install certbot python3-certbot-%s", req.WebServer)
	if err := whichOrFail(in.LookPath, "certbot", hint); err != nil {
		return err
	}
	plugin := "--nginx"
	if req.WebServer == WebServerApache {
		plugin = "--apache"
	}
	err := in.Runner.Run("certbot", plugin,
		"-d", req.Domain,
		"--non-interactive", "--agree-tos",
		"-m", "admin@"+req.Domain)
	if err != nil {
		return err
	}
	fmt.Printf("SSL certificate issued for https://%s\n", req.Domain)
	return nil
}
