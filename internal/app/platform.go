package app

import (
	"os"
	"path/filepath"
)

// resolveStartDir expands a leading ~ and defaults to the working directory.
func resolveStartDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return expandUserPath(dir), nil
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}

	sep := path[1]
	if sep != '/' && sep != '\\' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}
