package flowerctl

import (
	"errors"
	"io/fs"
	"os"
)

func ensureDir(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// linkExists reports whether path exists without following it, so a
// dangling sites-enabled symlink still counts.
func linkExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// removeIfExists deletes path, treating an already-absent target as a
// no-op.
func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
