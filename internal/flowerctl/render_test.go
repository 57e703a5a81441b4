package flowerctl

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNginxPlain(t *testing.T) {
	got, err := Render(TplNginxSite, siteContext("d.example.com", "", false))
	require.NoError(t, err)

	assert.NotContains(t, got, "allow ")
	assert.NotContains(t, got, "deny all")
	assert.NotContains(t, got, "auth_basic")

	g := goldie.New(t)
	g.Assert(t, "nginx_plain", []byte(got))
}

func TestRenderNginxAllowAndAuth(t *testing.T) {
	got, err := Render(TplNginxSite, siteContext("d.example.com", "10.0.0.0/24,192.168.1.5", true))
	require.NoError(t, err)

	// One allow line per entry, in input order, then deny-all.
	first := strings.Index(got, "allow 10.0.0.0/24;")
	second := strings.Index(got, "allow 192.168.1.5;")
	deny := strings.Index(got, "deny all;")
	require.True(t, first >= 0 && second >= 0 && deny >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, deny)
	assert.Equal(t, 2, strings.Count(got, "allow "))

	g := goldie.New(t)
	g.Assert(t, "nginx_allow_auth", []byte(got))
}

func TestRenderApachePlain(t *testing.T) {
	got, err := Render(TplApacheSite, siteContext("d.example.com", "", false))
	require.NoError(t, err)

	assert.Contains(t, got, "Require all granted")
	assert.NotContains(t, got, "AuthType")

	g := goldie.New(t)
	g.Assert(t, "apache_plain", []byte(got))
}

func TestRenderApacheAllowAndAuth(t *testing.T) {
	got, err := Render(TplApacheSite, siteContext("d.example.com", "10.0.0.0/24,192.168.1.5", true))
	require.NoError(t, err)

	// Apache takes the whole list on a single space-joined directive.
	assert.Contains(t, got, "Require ip 10.0.0.0/24 192.168.1.5")
	assert.Equal(t, 1, strings.Count(got, "Require ip"))
	assert.NotContains(t, got, "allow 10.0.0.0/24;")
	assert.Contains(t, got, "Require valid-user")

	g := goldie.New(t)
	g.Assert(t, "apache_allow_auth", []byte(got))
}

func TestRenderServiceWithBackend(t *testing.T) {
	got, err := Render(TplSystemdUnit, map[string]any{
		"project_dir":       "/opt/myproject",
		"venv":              "/opt/myproject/.venv",
		"redis_url":         "redis://localhost:6379/0",
		"redis_backend_url": "redis://localhost:6379/1",
	})
	require.NoError(t, err)

	assert.Contains(t, got, "WorkingDirectory=/opt/myproject")
	assert.Contains(t, got, "ExecStart=/opt/myproject/.venv/bin/celery")
	assert.Contains(t, got, "--broker=redis://localhost:6379/0")
	assert.Contains(t, got, " --result-backend=redis://localhost:6379/1")

	g := goldie.New(t)
	g.Assert(t, "service_backend", []byte(got))
}

func TestRenderServiceWithoutBackend(t *testing.T) {
	got, err := Render(TplSystemdUnit, map[string]any{
		"project_dir":       "/opt/myproject",
		"venv":              "/opt/myproject/.venv",
		"redis_url":         "redis://localhost:6379/0",
		"redis_backend_url": "",
	})
	require.NoError(t, err)

	// The flag must be wholly absent, not present-but-empty.
	assert.NotContains(t, got, "--result-backend")

	g := goldie.New(t)
	g.Assert(t, "service_no_backend", []byte(got))
}

func TestRenderMissingVariableFails(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		ctx  map[string]any
	}{
		{name: "nginx missing ip_allow", tpl: TplNginxSite, ctx: map[string]any{"domain": "d.example.com", "use_auth": false}},
		{name: "apache missing domain", tpl: TplApacheSite, ctx: map[string]any{"ip_allow": "", "use_auth": false}},
		{name: "service empty context", tpl: TplSystemdUnit, ctx: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.tpl, tt.ctx)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "map has no entry for key")
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("does-not-exist.tmpl", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing template")
}
