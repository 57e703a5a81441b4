package flowerctl

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUninstaller(t *testing.T) (*Uninstaller, *fakeRunner) {
	t.Helper()
	runner := &fakeRunner{}
	return NewUninstaller(testPaths(t), runner, zap.NewNop().Sugar()), runner
}

func seedInstalledHost(t *testing.T, p Paths) {
	t.Helper()
	require.NoError(t, os.WriteFile(p.SystemdUnit, []byte("[Unit]\n"), 0o644))
	require.NoError(t, os.WriteFile(p.ApacheSite, []byte("<VirtualHost>\n"), 0o644))
	require.NoError(t, os.WriteFile(p.NginxAvailable, []byte("server {}\n"), 0o644))
	require.NoError(t, os.Symlink(p.NginxAvailable, p.NginxEnabled))
}

func TestUninstallRemovesServiceAndSites(t *testing.T) {
	un, runner := newTestUninstaller(t)
	seedInstalledHost(t, un.Paths)

	require.NoError(t, un.Uninstall(false))

	assert.False(t, fileExists(un.Paths.SystemdUnit))
	assert.False(t, fileExists(un.Paths.ApacheSite))
	assert.False(t, linkExists(un.Paths.NginxEnabled))
	assert.False(t, fileExists(un.Paths.NginxAvailable))

	assert.Contains(t, runner.commands, "systemctl stop flower")
	assert.Contains(t, runner.commands, "systemctl disable flower")
	assert.Contains(t, runner.commands, "a2dissite flower")
	assert.Contains(t, runner.commands, "systemctl reload apache2")
	assert.Contains(t, runner.commands, "nginx -t")
	assert.Contains(t, runner.commands, "systemctl reload nginx")
}

func TestUninstallKeepSiteLeavesConfigs(t *testing.T) {
	un, _ := newTestUninstaller(t)
	seedInstalledHost(t, un.Paths)

	require.NoError(t, un.Uninstall(true))

	assert.False(t, fileExists(un.Paths.SystemdUnit))
	assert.True(t, fileExists(un.Paths.ApacheSite))
	assert.True(t, fileExists(un.Paths.NginxAvailable))
	assert.False(t, linkExists(un.Paths.NginxEnabled), "site stays disabled")
}

func TestUninstallCleanHostIsNoOp(t *testing.T) {
	un, runner := newTestUninstaller(t)

	require.NoError(t, un.Uninstall(false))

	assert.Equal(t, []string{
		"systemctl stop flower",
		"systemctl disable flower",
	}, runner.commands)
}

func TestUninstallDanglingNginxSymlink(t *testing.T) {
	un, runner := newTestUninstaller(t)
	require.NoError(t, os.Symlink(un.Paths.NginxAvailable, un.Paths.NginxEnabled))

	require.NoError(t, un.Uninstall(false))

	assert.False(t, linkExists(un.Paths.NginxEnabled))
	assert.Contains(t, runner.commands, "systemctl reload nginx")
}

func TestUninstallIgnoresCommandFailures(t *testing.T) {
	un, runner := newTestUninstaller(t)
	runner.failOn = "systemctl"
	seedInstalledHost(t, un.Paths)

	require.NoError(t, un.Uninstall(false))
	assert.False(t, fileExists(un.Paths.SystemdUnit))
	assert.False(t, fileExists(un.Paths.ApacheSite))
}
