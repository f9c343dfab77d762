// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and raw line output.
package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/poruru-code/keyprops/internal/infra/logging"
	"github.com/poruru-code/keyprops/internal/infra/ui"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newUI(out io.Writer, cli CLI) ui.UserInterface {
	return ui.NewConsoleUI(out, !cli.NoEmoji)
}

func newLogger(cli CLI, deps Dependencies) zerolog.Logger {
	return logging.New(logging.Config{Verbose: cli.Verbose, Output: deps.ErrOut})
}

func writeLine(out io.Writer, line string) {
	_, _ = fmt.Fprintln(out, line)
}

func writeString(out io.Writer, value string) {
	_, _ = io.WriteString(out, value)
}

// writeStructured encodes value as JSON or YAML.
func writeStructured(out io.Writer, format string, value any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
