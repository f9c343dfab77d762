// Where: internal/command/session.go
// What: Per-invocation project context shared by command handlers.
// Why: Every command resolves the project root and builds the plan the same way.
package command

import (
	"context"
	"errors"

	"github.com/poruru-code/keyprops/internal/infra/config"
	"github.com/poruru-code/keyprops/internal/infra/source"
	"github.com/poruru-code/keyprops/internal/usecase/configure"
	"github.com/poruru-code/keyprops/internal/usecase/credentials"
	"github.com/rs/zerolog"
)

var errGetwdNotConfigured = errors.New("working directory resolver is not configured")

type session struct {
	root   string
	logger zerolog.Logger
}

func newSession(cli CLI, deps Dependencies) (session, error) {
	if deps.Getwd == nil {
		return session{}, errGetwdNotConfigured
	}
	wd, err := deps.Getwd()
	if err != nil {
		return session{}, err
	}
	root, err := config.ResolveProjectRoot(cli.Root, wd)
	if err != nil {
		return session{}, err
	}
	logger := newLogger(cli, deps)
	logger.Debug().Str("root", root).Msg("project root resolved")
	return session{root: root, logger: logger}, nil
}

func (s session) configurator(deps Dependencies) configure.Configurator {
	opener := deps.Opener
	if opener == nil {
		opener = source.NewOpener()
	}
	return configure.New(credentials.Resolver{Opener: opener, Logger: s.logger}, s.logger)
}

func (s session) configure(ctx context.Context, cli CLI, deps Dependencies, skipCredentials bool) (configure.Result, error) {
	return s.configurator(deps).Configure(ctx, configure.Request{
		ProjectRoot:     s.root,
		Properties:      cli.Properties,
		SkipCredentials: skipCredentials,
	})
}
