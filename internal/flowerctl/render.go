package flowerctl

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/samber/lo"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	TplApacheSite  = "flower-apache.conf.tmpl"
	TplNginxSite   = "flower-nginx.conf.tmpl"
	TplSystemdUnit = "flower.service.tmpl"
)

// Render merges the named embedded template with ctx. Referencing a key
// absent from ctx is an error, never a blank substitution.
func Render(name string, ctx map[string]any) (string, error) {
	if name == TplNginxSite {
		ctx = expandNginxAllow(ctx)
	}
	t, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("executing template %q: %w", name, err)
	}
	return buf.String(), nil
}

// Nginx wants one allow directive per network while Apache takes the whole
// list on a single Require line, so only the nginx template gets the
// comma-list expanded before substitution.
func expandNginxAllow(ctx map[string]any) map[string]any {
	raw, _ := ctx["ip_allow"].(string)
	if raw == "" {
		return ctx
	}
	lines := lo.Map(splitCSV(raw), func(ip string, _ int) string {
		return fmt.Sprintf("allow %s;", ip)
	})
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	out["ip_allow"] = strings.Join(lines, "\n        ")
	return out
}

func siteContext(domain, ipAllow string, useAuth bool) map[string]any {
	return map[string]any{
		"domain":   domain,
		"ip_allow": ipAllow,
		"use_auth": useAuth,
	}
}
