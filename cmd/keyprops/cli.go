// Where: cmd/keyprops/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/keyprops/internal/command"
	"github.com/poruru-code/keyprops/internal/infra/interaction"
	"github.com/poruru-code/keyprops/internal/infra/source"
)

var (
	getwd     = os.Getwd
	newOpener = source.NewOpener
)

// buildDependencies constructs all runtime dependencies required by the CLI.
func buildDependencies() (command.Dependencies, error) {
	if _, err := getwd(); err != nil {
		return command.Dependencies{}, err
	}

	return command.Dependencies{
		Out:           os.Stdout,
		ErrOut:        os.Stderr,
		Getwd:         getwd,
		Prompter:      interaction.HuhPrompter{},
		Opener:        newOpener(),
		Confirm:       interaction.PromptYesNo,
		IsInteractive: stdioIsTerminal,
	}, nil
}

// stdioIsTerminal reports whether both stdin and stdout are attached to a terminal.
func stdioIsTerminal() bool {
	return interaction.IsTerminal(os.Stdin) && interaction.IsTerminal(os.Stdout)
}
