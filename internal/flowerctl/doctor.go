package flowerctl

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
)

// RunDoctor reports on everything an install run will need. Checks warn
// instead of failing so the whole table always prints.
func RunDoctor(runner Runner) error {
	fmt.Println("flowerctl doctor")
	fmt.Printf("runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	checks := []struct {
		name string
		fn   func() error
	}{
		{"running as root", func() error {
			if os.Geteuid() != 0 {
				return errors.New("not running as root")
			}
			return nil
		}},
		{"python3 binary", lookPathCheck("python3")},
		{"systemctl binary", lookPathCheck("systemctl")},
		{"web server binary (nginx or apache2)", func() error {
			if _, err := exec.LookPath("nginx"); err == nil {
				return nil
			}
			if _, err := exec.LookPath("apache2ctl"); err == nil {
				return nil
			}
			return errors.New("neither nginx nor apache2ctl found")
		}},
		{"htpasswd binary (for --create-user)", lookPathCheck("htpasswd")},
		{"certbot binary (for --certbot)", lookPathCheck("certbot")},
		{"port 5555 free for flower", func() error {
			out, err := runner.Capture("ss", "-ltn")
			if err != nil {
				return err
			}
			if strings.Contains(out, ":5555 ") {
				return errors.New("port 5555 already in use")
			}
			return nil
		}},
		{"/etc writable", func() error {
			f, err := os.CreateTemp("/etc", ".flowerctl-doctor-*")
			if err != nil {
				return err
			}
			f.Close()
			return os.Remove(f.Name())
		}},
		{"disk space >= 1GiB on /", func() error {
			return diskCheck("/", 1)
		}},
	}

	for _, check := range checks {
		if err := check.fn(); err != nil {
			fmt.Printf("[WARN] %s: %v\n", check.name, err)
		} else {
			fmt.Printf("[ OK ] %s\n", check.name)
		}
	}
	return nil
}

func lookPathCheck(binary string) func() error {
	return func() error {
		_, err := exec.LookPath(binary)
		return err
	}
}

func diskCheck(path string, minGiB uint64) error {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return err
	}
	free := (stat.Bavail * uint64(stat.Bsize)) / (1024 * 1024 * 1024)
	if free < minGiB {
		return fmt.Errorf("free space %dGiB < %dGiB", free, minGiB)
	}
	return nil
}
