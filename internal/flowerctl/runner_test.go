package flowerctl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRunner records every command line instead of executing it. Setting
// failOn makes the first command starting with that prefix fail with exit
// code 1.
type fakeRunner struct {
	commands   []string
	failOn     string
	captureOut string
}

func (r *fakeRunner) Run(name string, args ...string) error {
	line := commandLine(name, args)
	r.commands = append(r.commands, line)
	if r.failOn != "" && strings.HasPrefix(line, r.failOn) {
		return &CommandError{Cmd: line, Code: 1}
	}
	return nil
}

func (r *fakeRunner) Capture(name string, args ...string) (string, error) {
	r.commands = append(r.commands, commandLine(name, args))
	return r.captureOut, nil
}

func (r *fakeRunner) BestEffort(name string, args ...string) {
	_ = r.Run(name, args...)
}

func (r *fakeRunner) ran(prefix string) bool {
	for _, c := range r.commands {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// testPaths builds a Paths rooted in a per-test temp dir, mirroring the
// real /etc layout so symlink and removal behavior matches production.
func testPaths(t *testing.T) Paths {
	t.Helper()
	root := t.TempDir()
	mk := func(parts ...string) string {
		p := filepath.Join(append([]string{root}, parts...)...)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		return p
	}
	return Paths{
		ApacheSite:     mk("apache2", "sites-available", "flower.conf"),
		ApacheHtpasswd: mk("apache2", "flower_htpasswd"),
		NginxAvailable: mk("nginx", "sites-available", "flower"),
		NginxEnabled:   mk("nginx", "sites-enabled", "flower"),
		NginxHtpasswd:  mk("nginx", "flower_htpasswd"),
		SystemdUnit:    mk("systemd", "system", "flower.service"),
	}
}

func newTestInstaller(t *testing.T) (*Installer, *fakeRunner) {
	t.Helper()
	runner := &fakeRunner{}
	in := NewInstaller(testPaths(t), runner, zap.NewNop().Sugar())
	in.LookPath = func(file string) (string, error) {
		return "/usr/bin/" + file, nil
	}
	in.ReadPassword = func(string) (string, error) {
		return "s3cret", nil
	}
	return in, runner
}

func testRequest(t *testing.T, webServer string) Request {
	t.Helper()
	return Request{
		WebServer: webServer,
		Domain:    "flower.example.com",
		AppDir:    filepath.Join(t.TempDir(), "app"),
		RedisURL:  "redis://127.0.0.1:6379/0",
	}
}
