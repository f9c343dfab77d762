// Where: internal/infra/config/root.go
// What: Android project root discovery.
// Why: key.properties and storeFile are resolved against the project root, not the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrProjectRootNotFound is returned when no settings.gradle(.kts) is found above the start directory.
var ErrProjectRootNotFound = errors.New("android project root not found")

var rootMarkers = []string{"settings.gradle.kts", "settings.gradle"}

// ResolveProjectRoot determines the Android project root.
// Priority order.
// 1. explicit path (flag or KEYPROPS_ROOT), which must be a directory.
// 2. Upward search from startDir for a settings.gradle(.kts), also checking an android/ child.
func ResolveProjectRoot(explicit, startDir string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolve project root: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("project root %s: %w", abs, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project root %s is not a directory", abs)
		}
		return abs, nil
	}

	if startDir != "" {
		if root, ok := findProjectRoot(startDir); ok {
			return root, nil
		}
	}
	return "", fmt.Errorf("%w: run inside the android directory or pass --root", ErrProjectRootNotFound)
}

func findProjectRoot(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	dir = filepath.Clean(dir)
	for {
		if hasMarker(dir) {
			return dir, true
		}
		if child := filepath.Join(dir, "android"); hasMarker(child) {
			return child, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func hasMarker(dir string) bool {
	for _, marker := range rootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
