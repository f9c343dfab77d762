// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru-code/keyprops/internal/constants"
	"github.com/poruru-code/keyprops/internal/infra/envutil"
	"github.com/poruru-code/keyprops/internal/infra/interaction"
	"github.com/poruru-code/keyprops/internal/meta"
	"github.com/poruru-code/keyprops/internal/usecase/credentials"
)

// Dependencies holds all injected dependencies required for CLI command execution.
type Dependencies struct {
	Out      io.Writer
	ErrOut   io.Writer
	Getwd    func() (string, error)
	Prompter interaction.Prompter
	Opener   credentials.SourceOpener

	// Confirm asks a yes/no question. Nil means the answer is always no.
	Confirm func(message string) (bool, error)

	// IsInteractive reports whether prompts can be shown. Nil means stdin is checked.
	IsInteractive func() bool
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Root       string `short:"r" help:"Android project root (default: search upward for settings.gradle)"`
	Properties string `short:"p" help:"Signing properties location, relative to the root or s3://bucket/key"`
	EnvFile    string `name:"env-file" help:"Path to .env file"`
	Verbose    bool   `short:"v" help:"Verbose diagnostics on stderr"`
	NoEmoji    bool   `name:"no-emoji" help:"Disable emoji output"`

	Resolve    ResolveCmd    `cmd:"" help:"Resolve signing credentials and the build plan"`
	Check      CheckCmd      `cmd:"" help:"Report missing signing keys and keystore state"`
	Render     RenderCmd     `cmd:"" help:"Render app/build.gradle.kts from the build constants"`
	Init       InitCmd       `cmd:"" help:"Create the signing properties file interactively"`
	Config     ConfigCmd     `cmd:"" help:"Manage the project config"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion scripts"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

// VersionCmd prints build information.
type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	out := deps.Out

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Resolve Android release signing credentials from key.properties."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, deps)
	}

	// Load environment file if provided or if .env exists in current directory
	console := newUI(out, cli)
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			console.Warn(fmt.Sprintf("failed to load env file %s: %v", cli.EnvFile, err))
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			console.Warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}
	applyEnvDefaults(&cli)

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	console.Warn("unknown command")
	return 1
}

// applyEnvDefaults fills global flags left empty from the environment.
func applyEnvDefaults(cli *CLI) {
	cli.Root = envutil.Or(cli.Root, constants.EnvRoot)
	cli.Properties = envutil.Or(cli.Properties, constants.EnvProperties)
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"resolve":         runResolve,
		"check":           runCheck,
		"render":          runRender,
		"init":            runInit,
		"config show":     runConfigShow,
		"config init":     runConfigInit,
		"completion bash": func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":  func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish": func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":         runVersion,
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// runNoArgs prints a short usage summary.
func runNoArgs(out io.Writer) int {
	cmd := cliName()
	writeLine(out, "Usage:")
	writeLine(out, fmt.Sprintf("  %s resolve [--variant release|debug] [--format text|json|yaml]", cmd))
	writeLine(out, fmt.Sprintf("  %s check [--strict]", cmd))
	writeLine(out, fmt.Sprintf("  %s render [--output app/build.gradle.kts]", cmd))
	writeLine(out, fmt.Sprintf("  %s init", cmd))
	writeLine(out, "")
	writeLine(out, fmt.Sprintf("Try: %s --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, deps Dependencies) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--env-file"):
			return exitWithSuggestion(deps.ErrOut, "`--env-file` expects a value.",
				[]string{fmt.Sprintf("%s --env-file .env.ci resolve", cmd)})
		case strings.Contains(msg, "--root"):
			return exitWithSuggestion(deps.ErrOut, "`-r/--root` expects a directory.",
				[]string{fmt.Sprintf("%s --root ./android check", cmd)})
		case strings.Contains(msg, "--properties"):
			return exitWithSuggestion(deps.ErrOut, "`-p/--properties` expects a path or s3:// URL.",
				[]string{fmt.Sprintf("%s -p signing/release.properties resolve", cmd)})
		}
	}
	return exitWithError(deps.ErrOut, err)
}

func cliName() string {
	if name := strings.TrimSpace(os.Getenv("CLI_CMD")); name != "" {
		return name
	}
	return meta.AppName
}
