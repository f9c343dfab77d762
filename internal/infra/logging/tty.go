package logging

import (
	"io"
	"os"

	"github.com/poruru-code/keyprops/internal/infra/interaction"
)

func isTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && interaction.IsTerminal(file)
}
