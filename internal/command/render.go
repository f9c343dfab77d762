// Where: internal/command/render.go
// What: render command.
// Why: Write the app module Gradle script from the resolved build constants.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/poruru-code/keyprops/internal/infra/fileops"
	"github.com/poruru-code/keyprops/internal/infra/render"
	"github.com/poruru-code/keyprops/internal/infra/source"
	"github.com/poruru-code/keyprops/internal/meta"
)

var errOutputExists = errors.New("output file already exists (use --force to overwrite)")

// RenderCmd defines the render command flags.
type RenderCmd struct {
	Output string `short:"o" help:"Write to this path (relative to the project root) instead of stdout"`
	Force  bool   `help:"Overwrite an existing output file"`
}

func runRender(cli CLI, deps Dependencies, out io.Writer) int {
	sess, err := newSession(cli, deps)
	if err != nil {
		return exitWithRootError(deps.ErrOut, err)
	}
	result, err := sess.configure(context.Background(), cli, deps, true)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if result.AndroidErr != nil {
		return exitWithError(deps.ErrOut, result.AndroidErr)
	}

	propertiesFile := result.Credentials.Location
	if source.IsRemote(propertiesFile) {
		sess.logger.Warn().Str("source", propertiesFile).Msg("gradle reads local files only; rendering with key.properties")
		propertiesFile = meta.PropertiesFile
	}
	overrides := result.Config.Android
	script, err := render.RenderAppGradle(render.GradleInput{
		Android:        result.Plan.Android,
		PropertiesFile: propertiesFile,
		PinCompileSdk:  overrides.CompileSdk != 0,
		PinTargetSdk:   overrides.TargetSdk != 0,
	})
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if cli.Render.Output == "" {
		writeString(out, script)
		return 0
	}
	target := outputPath(sess.root, cli.Render.Output)
	if err := writeRenderedFile(target, script, cli.Render.Force); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	newUI(out, cli).Success(fmt.Sprintf("wrote %s", target))
	return 0
}

// outputPath resolves a relative output path against the project root.
func outputPath(root, output string) string {
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(root, output)
}

func writeRenderedFile(path, content string, force bool) error {
	if !force {
		if err := fileops.EnsureAbsent(path); errors.Is(err, fileops.ErrExists) {
			return fmt.Errorf("%w: %s", errOutputExists, path)
		} else if err != nil {
			return err
		}
	}
	return fileops.WriteFileAtomic(path, []byte(content), 0o644)
}
