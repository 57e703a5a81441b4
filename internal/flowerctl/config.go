package flowerctl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	WebServerApache = "apache"
	WebServerNginx  = "nginx"
)

// Paths collects every filesystem touchpoint the installer owns. Steps
// receive it explicitly instead of hard-coding literals, so tests can point
// the whole tool at a sandbox root via FLOWERCTL_* overrides.
type Paths struct {
	ApacheSite     string `env:"FLOWERCTL_APACHE_SITE" envDefault:"/etc/apache2/sites-available/flower.conf"`
	ApacheHtpasswd string `env:"FLOWERCTL_APACHE_HTPASSWD" envDefault:"/etc/apache2/flower_htpasswd"`
	NginxAvailable string `env:"FLOWERCTL_NGINX_AVAILABLE" envDefault:"/etc/nginx/sites-available/flower"`
	NginxEnabled   string `env:"FLOWERCTL_NGINX_ENABLED" envDefault:"/etc/nginx/sites-enabled/flower"`
	NginxHtpasswd  string `env:"FLOWERCTL_NGINX_HTPASSWD" envDefault:"/etc/nginx/flower_htpasswd"`
	SystemdUnit    string `env:"FLOWERCTL_SYSTEMD_UNIT" envDefault:"/etc/systemd/system/flower.service"`
}

func LoadPaths() (Paths, error) {
	var p Paths
	if err := env.Parse(&p); err != nil {
		return Paths{}, fmt.Errorf("load paths: %w", err)
	}
	return p, nil
}

// Htpasswd returns the credential file owned by the chosen web server.
func (p Paths) Htpasswd(webServer string) string {
	if webServer == WebServerApache {
		return p.ApacheHtpasswd
	}
	return p.NginxHtpasswd
}

// Request is a single install run's input, assembled once from flags,
// profile, and environment, then treated as immutable.
type Request struct {
	WebServer       string `yaml:"web_server" validate:"required,oneof=apache nginx"`
	Domain          string `yaml:"domain" validate:"required,fqdn"`
	AppDir          string `yaml:"app_dir" validate:"required"`
	RedisURL        string `yaml:"redis_url" validate:"required,url"`
	RedisBackendURL string `yaml:"redis_backend_url" validate:"omitempty,url"`
	IPAllow         string `yaml:"ip_allow"`
	CreateUser      string `yaml:"create_user"`
	Certbot         bool   `yaml:"certbot"`
}

func (r Request) Venv() string {
	return filepath.Join(r.AppDir, ".venv")
}

// ValidationError marks bad user input so the CLI can print usage instead
// of a bare error.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

var requestValidator = validator.New()

// Validate checks the request before any mutation happens and normalizes
// the app dir.
func (r *Request) Validate() error {
	r.AppDir = strings.TrimRight(r.AppDir, "/")
	if err := requestValidator.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			flags := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
				return flagName(fe.Field())
			})
			return &ValidationError{msg: "missing or invalid: " + strings.Join(flags, ", ")}
		}
		return err
	}
	return nil
}

func flagName(field string) string {
	switch field {
	case "WebServer":
		return "--web-server"
	case "Domain":
		return "--domain"
	case "AppDir":
		return "--app-dir"
	case "RedisURL":
		return "--redis-url"
	case "RedisBackendURL":
		return "--redis-backend-url"
	}
	return field
}

// LoadProfile reads preset install values from a yaml file. Explicit flags
// take precedence over profile values.
func LoadProfile(path string) (Request, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("read profile: %w", err)
	}
	var req Request
	if err := yaml.Unmarshal(b, &req); err != nil {
		return Request{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return req, nil
}
