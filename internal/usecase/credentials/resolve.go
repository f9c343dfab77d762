// Where: internal/usecase/credentials/resolve.go
// What: Signing credential resolution.
// Why: Turn an optional properties source into an optional CredentialSet, once per invocation.
package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/poruru-code/keyprops/internal/domain/signing"
	"github.com/poruru-code/keyprops/internal/infra/properties"
	"github.com/rs/zerolog"
)

var errOpenerNotConfigured = errors.New("source opener is not configured")

// SourceOpener selects a source for a location relative to the project root.
type SourceOpener interface {
	Open(ctx context.Context, projectRoot, location string) (signing.Source, error)
}

// Request captures the inputs of a resolution.
type Request struct {
	ProjectRoot string
	Location    string
	Encoding    properties.Encoding
}

// Result is the resolved credential state. Present is false when the source does not exist.
type Result struct {
	Location    string
	Present     bool
	Credentials signing.CredentialSet
}

// Resolver reads and decodes the signing properties source.
type Resolver struct {
	Opener SourceOpener
	Logger zerolog.Logger
}

// Resolve returns the credentials for req. A missing source is not an error;
// unreadable or unparseable sources are.
func (r Resolver) Resolve(ctx context.Context, req Request) (Result, error) {
	if r.Opener == nil {
		return Result{}, errOpenerNotConfigured
	}
	src, err := r.Opener.Open(ctx, req.ProjectRoot, req.Location)
	if err != nil {
		return Result{}, fmt.Errorf("open properties source: %w", err)
	}
	result := Result{Location: src.Location()}

	data, err := src.Read(ctx)
	if errors.Is(err, signing.ErrSourceNotFound) {
		r.Logger.Debug().Str("source", result.Location).Msg("signing properties absent; release signing left unconfigured")
		return result, nil
	}
	if err != nil {
		return Result{}, err
	}

	set, err := properties.Decode(data, req.Encoding)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", result.Location, err)
	}
	result.Present = true
	result.Credentials = signing.FromLookup(set.Get)

	if missing := result.Credentials.Missing(); len(missing) > 0 {
		r.Logger.Debug().Str("source", result.Location).Strs("missing", missing).Msg("signing properties incomplete")
	} else {
		r.Logger.Debug().Str("source", result.Location).Msg("signing properties resolved")
	}
	return result, nil
}
