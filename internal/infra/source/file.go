// Where: internal/infra/source/file.go
// What: Local file properties source.
// Why: Resolve key.properties relative to the project root, never the working directory.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/poruru-code/keyprops/internal/domain/signing"
)

// File reads a properties document from disk.
type File struct {
	Path string
}

// NewFile resolves path against projectRoot unless it is already absolute.
func NewFile(projectRoot, path string) File {
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectRoot, path)
	}
	return File{Path: filepath.Clean(path)}
}

func (f File) Location() string {
	return f.Path
}

func (f File) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", signing.ErrSourceNotFound, f.Path)
		}
		return nil, fmt.Errorf("read properties %s: %w", f.Path, err)
	}
	return data, nil
}
