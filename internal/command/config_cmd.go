// Where: internal/command/config_cmd.go
// What: config show/init commands.
// Why: Inspect and scaffold <root>/.keyprops/config.yaml.
package command

import (
	"fmt"
	"io"

	"github.com/poruru-code/keyprops/internal/infra/config"
)

// ConfigCmd groups project config subcommands.
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" help:"Print the effective project config"`
	Init ConfigInitCmd `cmd:"" help:"Write the default project config if missing"`
}

type (
	ConfigShowCmd struct{}
	ConfigInitCmd struct{}
)

func runConfigShow(cli CLI, deps Dependencies, out io.Writer) int {
	sess, err := newSession(cli, deps)
	if err != nil {
		return exitWithRootError(deps.ErrOut, err)
	}
	path, err := config.ProjectConfigPath(sess.root)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	cfg, err := config.LoadProjectConfig(sess.root)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if cli.Properties != "" {
		cfg.Properties = cli.Properties
	}
	writeLine(out, fmt.Sprintf("# %s", path))
	if err := writeStructured(out, formatYAML, cfg); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	return 0
}

func runConfigInit(cli CLI, deps Dependencies, out io.Writer) int {
	sess, err := newSession(cli, deps)
	if err != nil {
		return exitWithRootError(deps.ErrOut, err)
	}
	path, err := config.ProjectConfigPath(sess.root)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	created, err := config.EnsureProjectConfig(sess.root)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	console := newUI(out, cli)
	if !created {
		console.Info(fmt.Sprintf("%s already exists", path))
		return 0
	}
	console.Success(fmt.Sprintf("created %s", path))
	return 0
}
