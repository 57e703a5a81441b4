package flowerctl

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// Run dispatches a subcommand. An empty argument list prints help and
// succeeds; unknown commands fail.
func Run(args []string) error {
	if len(args) < 1 {
		Usage()
		return nil
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "install":
		return cmdInstall(cmdArgs)
	case "uninstall":
		return cmdUninstall(cmdArgs)
	case "status":
		return cmdStatus(cmdArgs)
	case "doctor":
		return RunDoctor(NewRunner(NewLogger()))
	case "help", "--help", "-h":
		Usage()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func Usage() {
	fmt.Println(`flowerctl - install a Celery Flower dashboard behind Apache or Nginx

Usage:
  flowerctl install --web-server apache|nginx --domain <domain> --app-dir <dir> --redis-url <url>
                    [--redis-backend-url <url>] [--ip-allow <csv>] [--create-user <user>]
                    [--certbot] [--profile <file>]
  flowerctl uninstall [--keep-site]
  flowerctl status                  # derive install state from the filesystem
  flowerctl doctor                  # preflight checks
  flowerctl setup                   # interactive setup wizard

Examples:
  flowerctl install --web-server nginx --domain tracking.example.com \
      --app-dir /var/www/vhosts/flower-server --redis-url redis://127.0.0.1:6379/0 \
      --ip-allow "10.0.0.0/24,192.168.1.5" --create-user admin --certbot
  flowerctl uninstall --keep-site`)
}

func cmdInstall(args []string) error {
	fs := flag.NewFlagSet("install", flag.ContinueOnError)
	webServer := fs.String("web-server", WebServerApache, "web server to configure: apache or nginx")
	domain := fs.String("domain", "", "domain name for the Flower dashboard")
	appDir := fs.String("app-dir", "", "directory for the venv and Flower app")
	redisURL := fs.String("redis-url", "", "Redis broker URL")
	redisBackendURL := fs.String("redis-backend-url", "", "optional Redis result backend URL")
	ipAllow := fs.String("ip-allow", "", "comma-separated list of allowed IPs or networks")
	createUser := fs.String("create-user", "", "username for basic auth")
	certbot := fs.Bool("certbot", false, "issue a TLS certificate via certbot")
	profile := fs.String("profile", "", "yaml file with preset install values")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := EnsureRoot(); err != nil {
		return err
	}

	var req Request
	if *profile != "" {
		loaded, err := LoadProfile(*profile)
		if err != nil {
			return err
		}
		req = loaded
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	req = overlayRequest(req, Request{
		WebServer:       *webServer,
		Domain:          *domain,
		AppDir:          *appDir,
		RedisURL:        *redisURL,
		RedisBackendURL: *redisBackendURL,
		IPAllow:         *ipAllow,
		CreateUser:      *createUser,
		Certbot:         *certbot,
	}, set)

	paths, err := LoadPaths()
	if err != nil {
		return err
	}
	log := NewLogger()
	installer := NewInstaller(paths, NewRunner(log), log)

	if err := installer.Install(req); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr)
			Usage()
		}
		return err
	}
	return nil
}

// overlayRequest merges flag values over a profile-loaded request.
// Explicitly-set flags always win; unset flags only fill fields the
// profile left empty, so flag defaults do not clobber profile values.
// The certbot bool has no empty state and changes only when set.
func overlayRequest(base, flags Request, set map[string]bool) Request {
	req := base
	if set["web-server"] || req.WebServer == "" {
		req.WebServer = flags.WebServer
	}
	if set["domain"] || req.Domain == "" {
		req.Domain = flags.Domain
	}
	if set["app-dir"] || req.AppDir == "" {
		req.AppDir = flags.AppDir
	}
	if set["redis-url"] || req.RedisURL == "" {
		req.RedisURL = flags.RedisURL
	}
	if set["redis-backend-url"] || req.RedisBackendURL == "" {
		req.RedisBackendURL = flags.RedisBackendURL
	}
	if set["ip-allow"] || req.IPAllow == "" {
		req.IPAllow = flags.IPAllow
	}
	if set["create-user"] || req.CreateUser == "" {
		req.CreateUser = flags.CreateUser
	}
	if set["certbot"] {
		req.Certbot = flags.Certbot
	}
	return req
}

func cmdUninstall(args []string) error {
	fs := flag.NewFlagSet("uninstall", flag.ContinueOnError)
	keepSite := fs.Bool("keep-site", false, "keep the Apache/Nginx config on disk, but disable it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := EnsureRoot(); err != nil {
		return err
	}

	paths, err := LoadPaths()
	if err != nil {
		return err
	}
	log := NewLogger()
	return NewUninstaller(paths, NewRunner(log), log).Uninstall(*keepSite)
}

func cmdStatus(args []string) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths, err := LoadPaths()
	if err != nil {
		return err
	}
	return RunStatus(paths, NewRunner(NewLogger()))
}
