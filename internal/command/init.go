// Where: internal/command/init.go
// What: init command.
// Why: Create key.properties interactively without echoing passwords.
package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poruru-code/keyprops/internal/domain/signing"
	"github.com/poruru-code/keyprops/internal/infra/config"
	"github.com/poruru-code/keyprops/internal/infra/interaction"
	"github.com/poruru-code/keyprops/internal/infra/properties"
	"github.com/poruru-code/keyprops/internal/infra/source"
	"github.com/poruru-code/keyprops/internal/usecase/credentials"
)

const (
	defaultStoreFile = "upload-keystore.jks"
	defaultKeyAlias  = "upload"
)

var (
	errNotInteractive   = errors.New("init requires an interactive terminal")
	errRemoteInit       = errors.New("init writes local files only; pass a local --properties path")
	errPasswordRequired = errors.New("store password is required")
)

// InitCmd defines the init command flags.
type InitCmd struct {
	Force     bool   `help:"Overwrite an existing properties file"`
	StoreFile string `name:"store-file" help:"Keystore path (relative to the project root)"`
	KeyAlias  string `name:"key-alias" help:"Key alias inside the keystore"`
}

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	sess, err := newSession(cli, deps)
	if err != nil {
		return exitWithRootError(deps.ErrOut, err)
	}
	cfg, err := config.LoadProjectConfig(sess.root)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	location := cfg.PropertiesLocation()
	if cli.Properties != "" {
		location = cli.Properties
	}
	if source.IsRemote(location) {
		return exitWithError(deps.ErrOut, errRemoteInit)
	}
	encoding, err := properties.ParseEncoding(cfg.Encoding)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	path := source.NewFile(sess.root, location).Path

	if deps.Prompter == nil || !isInteractive(deps) {
		return exitWithError(deps.ErrOut, errNotInteractive)
	}
	overwrite := cli.Init.Force
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			confirmed, err := confirm(deps, fmt.Sprintf("%s exists. Overwrite?", path))
			if err != nil {
				return exitWithError(deps.ErrOut, err)
			}
			if !confirmed {
				return exitWithSuggestion(deps.ErrOut,
					fmt.Sprintf("%v: %s", credentials.ErrPropertiesExist, path),
					[]string{fmt.Sprintf("%s init --force", cliName())})
			}
			overwrite = true
		}
	}

	creds, err := promptCredentials(deps.Prompter, cli.Init)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if err := credentials.Write(credentials.WriteRequest{
		Path:        path,
		Credentials: creds,
		Encoding:    encoding,
		Overwrite:   overwrite,
	}); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	sess.logger.Debug().Str("path", path).Msg("signing properties written")

	console := newUI(out, cli)
	console.Success(fmt.Sprintf("wrote %s", path))
	console.Info("Keep this file out of version control.")
	return 0
}

func promptCredentials(prompter interaction.Prompter, cmd InitCmd) (signing.CredentialSet, error) {
	storeFile := strings.TrimSpace(cmd.StoreFile)
	if storeFile == "" {
		value, err := prompter.Input("Keystore path (storeFile)", defaultStoreFile)
		if err != nil {
			return signing.CredentialSet{}, err
		}
		storeFile = orDefault(value, defaultStoreFile)
	}
	storePassword, err := prompter.Password("Keystore password (storePassword)")
	if err != nil {
		return signing.CredentialSet{}, err
	}
	if storePassword == "" {
		return signing.CredentialSet{}, errPasswordRequired
	}
	keyAlias := strings.TrimSpace(cmd.KeyAlias)
	if keyAlias == "" {
		value, err := prompter.Input("Key alias (keyAlias)", defaultKeyAlias)
		if err != nil {
			return signing.CredentialSet{}, err
		}
		keyAlias = orDefault(value, defaultKeyAlias)
	}
	// PKCS12 keystores share one password; blank reuses the store password.
	keyPassword, err := prompter.Password("Key password (keyPassword, blank = store password)")
	if err != nil {
		return signing.CredentialSet{}, err
	}
	if keyPassword == "" {
		keyPassword = storePassword
	}

	return signing.CredentialSet{
		StoreFile:     &storeFile,
		StorePassword: &storePassword,
		KeyAlias:      &keyAlias,
		KeyPassword:   &keyPassword,
	}, nil
}

func confirm(deps Dependencies, message string) (bool, error) {
	if deps.Confirm == nil {
		return false, nil
	}
	return deps.Confirm(message)
}

func isInteractive(deps Dependencies) bool {
	if deps.IsInteractive != nil {
		return deps.IsInteractive()
	}
	return interaction.IsTerminal(os.Stdin)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
