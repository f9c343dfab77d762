// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure messages and exit codes consistent across commands.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/poruru-code/keyprops/internal/infra/config"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	writeLine(out, fmt.Sprintf("✗ %v", err))
	return 1
}

// exitWithSuggestion prints an error with follow-up hints.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	writeLine(out, fmt.Sprintf("⚠️  %s", message))
	if len(suggestions) > 0 {
		writeLine(out, "")
		writeLine(out, "💡 Next steps:")
		for _, s := range suggestions {
			writeLine(out, fmt.Sprintf("   - %s", s))
		}
	}
	return 1
}

// exitWithRootError handles project root discovery failures.
func exitWithRootError(out io.Writer, err error) int {
	if errors.Is(err, config.ErrProjectRootNotFound) {
		cmd := cliName()
		return exitWithSuggestion(out, err.Error(), []string{
			"cd into the Flutter app's android/ directory",
			fmt.Sprintf("%s --root <path-to-android> <command>", cmd),
		})
	}
	return exitWithError(out, err)
}
