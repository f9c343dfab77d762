// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for generated and secret files.
// Why: Keep overwrite checks and atomic writes consistent across config, render, and init.
package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// ErrExists is returned by EnsureAbsent when the path already exists.
var ErrExists = errors.New("file already exists")

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// EnsureAbsent fails with ErrExists when path exists. Other stat failures are returned as-is.
func EnsureAbsent(path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrExists, path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

// WriteFileAtomic creates parent directories and replaces path via rename,
// so readers never observe a partially written file.
func WriteFileAtomic(path string, content []byte, perm fs.FileMode) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if err := renameio.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
