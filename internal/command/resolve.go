// Where: internal/command/resolve.go
// What: resolve command.
// Why: Show which credentials and build constants a variant is built with.
package command

import (
	"context"
	"fmt"
	"io"

	"github.com/poruru-code/keyprops/internal/domain/build"
	"github.com/poruru-code/keyprops/internal/domain/signing"
	"github.com/poruru-code/keyprops/internal/infra/appversion"
	"github.com/poruru-code/keyprops/internal/infra/ui"
	"github.com/poruru-code/keyprops/internal/usecase/configure"
)

// ResolveCmd defines the resolve command flags.
type ResolveCmd struct {
	Variant     string `default:"release" help:"Build variant (debug/release)"`
	Format      string `short:"f" default:"text" enum:"text,json,yaml" help:"Output format (text/json/yaml)"`
	ShowSecrets bool   `name:"show-secrets" help:"Print passwords instead of masking them"`
}

type resolveOutput struct {
	ProjectRoot   string                 `json:"projectRoot" yaml:"projectRoot"`
	Source        string                 `json:"source" yaml:"source"`
	Present       bool                   `json:"present" yaml:"present"`
	Credentials   *signing.CredentialSet `json:"credentials,omitempty" yaml:"credentials,omitempty"`
	VersionOrigin appversion.Origin      `json:"versionOrigin" yaml:"versionOrigin"`
	Android       build.AndroidConfig    `json:"android" yaml:"android"`
	BuildType     build.BuildType        `json:"buildType" yaml:"buildType"`
	AndroidError  string                 `json:"androidError,omitempty" yaml:"androidError,omitempty"`
}

func runResolve(cli CLI, deps Dependencies, out io.Writer) int {
	cmd := cli.Resolve
	variant, err := build.ParseVariant(cmd.Variant)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	sess, err := newSession(cli, deps)
	if err != nil {
		return exitWithRootError(deps.ErrOut, err)
	}
	result, err := sess.configure(context.Background(), cli, deps, !variant.ConsumesCredentials())
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	output := buildResolveOutput(result, variant, cmd.ShowSecrets)
	if cmd.Format != formatText {
		if err := writeStructured(out, cmd.Format, output); err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		return 0
	}
	printResolveText(newUI(out, cli), output)
	return 0
}

func buildResolveOutput(result configure.Result, variant build.Variant, showSecrets bool) resolveOutput {
	bt, _ := result.Plan.BuildType(variant)
	output := resolveOutput{
		ProjectRoot:   result.ProjectRoot,
		Source:        result.Credentials.Location,
		Present:       result.Credentials.Present,
		VersionOrigin: result.VersionOrigin,
		Android:       result.Plan.Android,
		BuildType:     bt,
	}
	if result.AndroidErr != nil {
		output.AndroidError = result.AndroidErr.Error()
	}
	if result.Credentials.Present {
		creds := result.Credentials.Credentials
		if !showSecrets {
			creds = creds.Redacted()
		}
		output.Credentials = &creds
	}
	if bt.SigningConfig != nil && !showSecrets {
		redacted := bt.SigningConfig.Redacted()
		output.BuildType.SigningConfig = &redacted
	}
	return output
}

func printResolveText(console ui.UserInterface, output resolveOutput) {
	variant := output.BuildType.Variant
	if output.AndroidError != "" {
		console.Warn(fmt.Sprintf("build constants: %s; showing defaults where unresolved", output.AndroidError))
	}
	console.Block("🤖", "Android", []ui.KeyValue{
		{Key: "projectRoot", Value: output.ProjectRoot},
		{Key: "namespace", Value: output.Android.Namespace},
		{Key: "applicationId", Value: output.Android.ApplicationID},
		{Key: "compileSdk", Value: output.Android.CompileSdk},
		{Key: "minSdk", Value: output.Android.MinSdk},
		{Key: "targetSdk", Value: output.Android.TargetSdk},
		{Key: "ndkVersion", Value: output.Android.NdkVersion},
		{Key: "jvmTarget", Value: output.Android.JvmTarget()},
		{Key: "versionName", Value: output.Android.VersionName},
		{Key: "versionCode", Value: fmt.Sprintf("%d (%s)", output.Android.VersionCode, output.VersionOrigin)},
	})

	if !variant.ConsumesCredentials() {
		console.Block("🔑", fmt.Sprintf("Signing (%s)", variant), []ui.KeyValue{
			{Key: "signingConfig", Value: "toolchain debug keystore"},
		})
		return
	}
	if !output.Present {
		console.Warn(fmt.Sprintf("%s not found; %s signing left unconfigured", output.Source, variant))
		return
	}

	signingConfig := output.BuildType.SigningConfig
	console.Block("🔑", fmt.Sprintf("Signing (%s)", variant), []ui.KeyValue{
		{Key: "source", Value: output.Source},
		{Key: signing.KeyStoreFile, Value: signing.Display(signingConfig.StoreFile)},
		{Key: signing.KeyStorePassword, Value: signing.Display(signingConfig.StorePassword)},
		{Key: signing.KeyKeyAlias, Value: signing.Display(signingConfig.KeyAlias)},
		{Key: signing.KeyKeyPassword, Value: signing.Display(signingConfig.KeyPassword)},
	})
	if missing := output.Credentials.Missing(); len(missing) > 0 {
		console.Warn(fmt.Sprintf("missing keys: %v", missing))
	}
}
