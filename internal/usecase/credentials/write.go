// Where: internal/usecase/credentials/write.go
// What: Create a signing properties file.
// Why: Give developers a safe way to produce key.properties locally.
package credentials

import (
	"errors"
	"fmt"

	"github.com/poruru-code/keyprops/internal/domain/signing"
	"github.com/poruru-code/keyprops/internal/infra/fileops"
	"github.com/poruru-code/keyprops/internal/infra/properties"
)

// ErrPropertiesExist is returned when the target exists and overwrite was not requested.
var ErrPropertiesExist = errors.New("properties file already exists")

// WriteRequest describes a properties file to create.
type WriteRequest struct {
	Path        string
	Credentials signing.CredentialSet
	Encoding    properties.Encoding
	Overwrite   bool
}

// Write stores the credentials atomically with owner-only permissions. Nil fields are skipped.
func Write(req WriteRequest) error {
	if req.Path == "" {
		return fmt.Errorf("properties path is required")
	}
	if !req.Overwrite {
		if err := fileops.EnsureAbsent(req.Path); errors.Is(err, fileops.ErrExists) {
			return fmt.Errorf("%w: %s", ErrPropertiesExist, req.Path)
		} else if err != nil {
			return err
		}
	}

	values := make(map[string]string, len(signing.Keys))
	for _, key := range signing.Keys {
		if value := req.Credentials.Field(key); value != nil {
			values[key] = *value
		}
	}
	content, err := properties.Encode(signing.Keys, values, req.Encoding)
	if err != nil {
		return err
	}

	return fileops.WriteFileAtomic(req.Path, []byte(content), 0o600)
}
