package platform

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aretw0/poaf/pkg/adapters/fs"
)

// ConfigFileName is the optional project configuration file.
const ConfigFileName = "poaf.yaml"

// ErrRootNotFound is returned by FindRoot when no ancestor holds a marker.
var ErrRootNotFound = errors.New("project root not found")

// rootMarkers identify a project root, checked in order in each directory.
var rootMarkers = []string{fs.DefaultDir, ConfigFileName}

// FindRoot walks from startDir up to the filesystem root and returns the
// first directory holding a .PRO data directory or a poaf.yaml file.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}
