package flowerctl

import (
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// Installer runs the provisioning pipeline. Every step goes through Paths
// and Runner so the whole pipeline is testable without root or a real
// host.
type Installer struct {
	Paths  Paths
	Runner Runner
	Log    *zap.SugaredLogger

	// ReadPassword collects the basic-auth password when --create-user is
	// set. Defaults to a masked terminal prompt; the setup wizard
	// pre-fills it with the password it already collected.
	ReadPassword func(prompt string) (string, error)

	// LookPath resolves external binaries for the dependency guards.
	LookPath func(file string) (string, error)
}

func NewInstaller(paths Paths, runner Runner, log *zap.SugaredLogger) *Installer {
	return &Installer{
		Paths:        paths,
		Runner:       runner,
		Log:          log,
		ReadPassword: promptPassword,
		LookPath:     exec.LookPath,
	}
}

// Install runs the full pipeline in fixed order. It aborts on the first
// failing step; there is no partial-success status and no rollback of
// earlier steps.
func (in *Installer) Install(req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	normalized, err := ValidateIPList(req.IPAllow)
	if err != nil {
		return err
	}
	req.IPAllow = normalized

	if err := in.CreateVenv(req); err != nil {
		return err
	}

	useAuth, err := in.ConfigureAuth(req)
	if err != nil {
		return err
	}

	if err := in.ConfigureWebServer(req, useAuth); err != nil {
		return err
	}

	if req.Certbot {
		if err := in.IssueCertificate(req); err != nil {
			return err
		}
	}

	if err := in.RegisterService(req); err != nil {
		return err
	}

	fmt.Printf("\nFlower dashboard running at https://%s\n", req.Domain)
	if useAuth {
		fmt.Printf("Login user: %s\n", req.CreateUser)
	}
	return nil
}

// ConfigureAuth creates the htpasswd entry when a username was requested
// and reports whether the site templates should require basic auth.
func (in *Installer) ConfigureAuth(req Request) (bool, error) {
	if req.CreateUser == "" {
		return false, nil
	}
	if err := in.createHtpasswd(req.CreateUser, req.WebServer); err != nil {
		return false, err
	}
	return true, nil
}

// ConfigureWebServer branches on the chosen web server; exactly one of the
// two site configs is ever written.
func (in *Installer) ConfigureWebServer(req Request, useAuth bool) error {
	if req.WebServer == WebServerNginx {
		return in.setupNginx(req.Domain, req.IPAllow, useAuth)
	}
	return in.setupApache(req.Domain, req.IPAllow, useAuth)
}
