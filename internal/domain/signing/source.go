// Where: internal/domain/signing/source.go
// What: Properties source port.
// Why: Let the resolver read local files or remote objects through one contract.
package signing

import (
	"context"
	"errors"
)

// ErrSourceNotFound marks a source that does not exist. Resolvers treat it as "absent".
var ErrSourceNotFound = errors.New("properties source not found")

// Source yields the raw bytes of a properties document.
type Source interface {
	// Location describes the source for messages, e.g. an absolute path or s3:// URL.
	Location() string
	// Read returns the content, or an error wrapping ErrSourceNotFound when it does not exist.
	Read(ctx context.Context) ([]byte, error)
}
