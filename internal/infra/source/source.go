// Where: internal/infra/source/source.go
// What: Source selection from a location string.
// Why: Accept either a root-relative path or an s3:// URL wherever a properties location is configured.
package source

import (
	"context"
	"strings"

	"github.com/poruru-code/keyprops/internal/domain/signing"
)

// Opener turns a location into a signing.Source.
type Opener struct {
	NewS3 S3Factory
}

// NewOpener returns an Opener backed by the real AWS SDK.
func NewOpener() Opener {
	return Opener{NewS3: NewS3Client}
}

// IsRemote reports whether the location names an S3 object.
func IsRemote(location string) bool {
	return strings.HasPrefix(strings.TrimSpace(location), "s3://")
}

// Open selects the source for location. Local paths are resolved against projectRoot.
func (o Opener) Open(ctx context.Context, projectRoot, location string) (signing.Source, error) {
	location = strings.TrimSpace(location)
	if !IsRemote(location) {
		return NewFile(projectRoot, location), nil
	}
	bucket, key, err := ParseS3URL(location)
	if err != nil {
		return nil, err
	}
	factory := o.NewS3
	if factory == nil {
		factory = NewS3Client
	}
	client, err := factory(ctx)
	if err != nil {
		return nil, err
	}
	return S3Object{Bucket: bucket, Key: key, Client: client}, nil
}
