package flowerctl

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

// createHtpasswd creates or appends to the web server's credential file
// via the external htpasswd tool. The -c flag is only passed when the file
// does not exist yet, so re-running install appends instead of truncating.
func (in *Installer) createHtpasswd(user, webServer string) error {
	if err := whichOrFail(in.LookPath, "htpasswd", "Install with: apt-get install apache2-utils"); err != nil {
		return err
	}
	path := in.Paths.Htpasswd(webServer)
	pw, err := in.ReadPassword(fmt.Sprintf("Enter password for %s: ", user))
	if err != nil {
		return err
	}
	args := []string{"-b", path, user, pw}
	if !fileExists(path) {
		args = append([]string{"-c"}, args...)
	}
	return in.Runner.Run("htpasswd", args...)
}
