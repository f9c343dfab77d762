// Where: internal/command/check.go
// What: check command.
// Why: Opt-in validation of the release signing inputs before a build.
package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/poruru-code/keyprops/internal/infra/ui"
	"github.com/poruru-code/keyprops/internal/usecase/credentials"
)

// CheckCmd defines the check command flags.
type CheckCmd struct {
	Strict bool `help:"Exit non-zero when release signing is absent or incomplete, or the build constants are invalid"`
}

func runCheck(cli CLI, deps Dependencies, out io.Writer) int {
	sess, err := newSession(cli, deps)
	if err != nil {
		return exitWithRootError(deps.ErrOut, err)
	}
	result, err := sess.configure(context.Background(), cli, deps, false)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	report := credentials.Check(result.ProjectRoot, result.Credentials)
	console := newUI(out, cli)
	rows := []ui.KeyValue{
		{Key: "source", Value: report.Location},
		{Key: "present", Value: report.Present},
	}
	if report.Present {
		missing := "none"
		if len(report.Missing) > 0 {
			missing = strings.Join(report.Missing, ", ")
		}
		rows = append(rows,
			ui.KeyValue{Key: "missing", Value: missing},
			ui.KeyValue{Key: "keystore", Value: displayPath(report.StoreFile)},
			ui.KeyValue{Key: "keystoreExists", Value: report.StoreFileExists},
		)
	}
	console.Block("🔎", "Release signing", rows)

	problems := checkProblems(report)
	if result.AndroidErr != nil {
		problems = append(problems, fmt.Sprintf("build constants: %v", result.AndroidErr))
	}
	if report.OK() {
		console.Success("release signing is configured")
	}
	if len(problems) == 0 {
		return 0
	}
	for _, problem := range problems {
		console.Warn(problem)
	}
	if cli.Check.Strict {
		return 1
	}
	return 0
}

func checkProblems(report credentials.Report) []string {
	if !report.Present {
		return []string{fmt.Sprintf("%s not found; release builds will be unsigned", report.Location)}
	}
	var problems []string
	if len(report.Missing) > 0 {
		problems = append(problems, fmt.Sprintf("missing keys: %s", strings.Join(report.Missing, ", ")))
	}
	if report.StoreFile != "" && !report.StoreFileExists {
		problems = append(problems, fmt.Sprintf("keystore not found: %s", report.StoreFile))
	}
	return problems
}

func displayPath(path string) string {
	if path == "" {
		return "<unset>"
	}
	return path
}
