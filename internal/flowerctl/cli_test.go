package flowerctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayRequest(t *testing.T) {
	profile := Request{
		WebServer:  WebServerNginx,
		Domain:     "profile.example.com",
		AppDir:     "/opt/profile",
		RedisURL:   "redis://profile:6379/0",
		IPAllow:    "10.0.0.0/24",
		CreateUser: "padmin",
		Certbot:    true,
	}
	// What a parsed FlagSet yields when nothing was passed.
	flagDefaults := Request{WebServer: WebServerApache}

	tests := []struct {
		name  string
		base  Request
		flags Request
		set   map[string]bool
		want  Request
	}{
		{
			name:  "no profile takes flag defaults",
			base:  Request{},
			flags: flagDefaults,
			set:   map[string]bool{},
			want:  Request{WebServer: WebServerApache},
		},
		{
			name:  "profile survives unset flag defaults",
			base:  profile,
			flags: flagDefaults,
			set:   map[string]bool{},
			want:  profile,
		},
		{
			name: "explicit flags win over profile",
			base: profile,
			flags: Request{
				WebServer: WebServerApache,
				Domain:    "flag.example.com",
			},
			set: map[string]bool{"web-server": true, "domain": true},
			want: Request{
				WebServer:  WebServerApache,
				Domain:     "flag.example.com",
				AppDir:     "/opt/profile",
				RedisURL:   "redis://profile:6379/0",
				IPAllow:    "10.0.0.0/24",
				CreateUser: "padmin",
				Certbot:    true,
			},
		},
		{
			name:  "explicit empty flag clears profile value",
			base:  profile,
			flags: Request{WebServer: WebServerApache, CreateUser: ""},
			set:   map[string]bool{"create-user": true},
			want: Request{
				WebServer:  WebServerNginx,
				Domain:     "profile.example.com",
				AppDir:     "/opt/profile",
				RedisURL:   "redis://profile:6379/0",
				IPAllow:    "10.0.0.0/24",
				CreateUser: "",
				Certbot:    true,
			},
		},
		{
			name:  "unset certbot keeps profile true",
			base:  profile,
			flags: Request{WebServer: WebServerApache, Certbot: false},
			set:   map[string]bool{},
			want:  profile,
		},
		{
			name:  "explicit certbot false overrides profile",
			base:  profile,
			flags: Request{WebServer: WebServerApache, Certbot: false},
			set:   map[string]bool{"certbot": true},
			want: Request{
				WebServer:  WebServerNginx,
				Domain:     "profile.example.com",
				AppDir:     "/opt/profile",
				RedisURL:   "redis://profile:6379/0",
				IPAllow:    "10.0.0.0/24",
				CreateUser: "padmin",
				Certbot:    false,
			},
		},
		{
			name: "flags fill fields the profile left empty",
			base: Request{WebServer: WebServerNginx, Domain: "profile.example.com"},
			flags: Request{
				WebServer: WebServerApache,
				AppDir:    "/opt/flag",
				RedisURL:  "redis://flag:6379/0",
			},
			set: map[string]bool{"app-dir": true, "redis-url": true},
			want: Request{
				WebServer: WebServerNginx,
				Domain:    "profile.example.com",
				AppDir:    "/opt/flag",
				RedisURL:  "redis://flag:6379/0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlayRequest(tt.base, tt.flags, tt.set))
		})
	}
}
