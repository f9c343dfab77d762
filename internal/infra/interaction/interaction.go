// Where: internal/infra/interaction/interaction.go
// What: Terminal detection and the overwrite confirmation used by init.
// Why: Passwords are only prompted for on a real terminal, and key.properties is only replaced on an explicit yes.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter collects the four signing values. Password must not echo its input.
type Prompter interface {
	Input(title, placeholder string) (string, error)
	Password(title string) (string, error)
}

// IsTerminal reports whether file is a terminal. Cygwin and MSYS ptys count.
// Tests swap it to simulate CI.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PromptYesNo asks on stderr so stdout stays clean for piped output.
func PromptYesNo(message string) (bool, error) {
	return PromptYesNoWithIO(os.Stdin, os.Stderr, message)
}

// PromptYesNoWithIO reads one answer line from in. Anything but y or yes,
// including EOF on a closed stdin, keeps the existing file.
func PromptYesNoWithIO(in io.Reader, out io.Writer, message string) (bool, error) {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	reader := bufio.NewReader(in)
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y" || trimmed == "yes", nil
}
