package flowerctl

import (
	"fmt"
	"strings"
)

// RunStatus re-derives the install state from the filesystem. The tool
// keeps no state of its own between invocations, so presence of the
// well-known files is the whole truth.
func RunStatus(paths Paths, runner Runner) error {
	checks := []struct {
		label   string
		present bool
	}{
		{"apache vhost      " + paths.ApacheSite, fileExists(paths.ApacheSite)},
		{"apache htpasswd   " + paths.ApacheHtpasswd, fileExists(paths.ApacheHtpasswd)},
		{"nginx server block " + paths.NginxAvailable, fileExists(paths.NginxAvailable)},
		{"nginx enabled link " + paths.NginxEnabled, linkExists(paths.NginxEnabled)},
		{"nginx htpasswd    " + paths.NginxHtpasswd, fileExists(paths.NginxHtpasswd)},
		{"systemd unit      " + paths.SystemdUnit, fileExists(paths.SystemdUnit)},
	}

	for _, c := range checks {
		mark := "[ -- ]"
		if c.present {
			mark = "[ OK ]"
		}
		fmt.Printf("%s %s\n", mark, c.label)
	}

	out, err := runner.Capture("systemctl", "is-active", "flower")
	state := strings.TrimSpace(out)
	if err != nil || state == "" {
		state = "inactive or unknown"
	}
	fmt.Printf("flower service: %s\n", state)
	return nil
}
