// Where: internal/command/version.go
// What: version command.
// Why: Report the build that produced the binary.
package command

import (
	"io"

	"github.com/poruru-code/keyprops/internal/version"
)

func runVersion(_ CLI, _ Dependencies, out io.Writer) int {
	writeLine(out, version.GetVersion())
	return 0
}
