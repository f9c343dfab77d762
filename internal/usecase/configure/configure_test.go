// Where: internal/usecase/configure/configure_test.go
// What: Tests for build plan assembly.
// Why: Ensure config overrides, version bindings, and signing wiring compose correctly.
package configure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru-code/keyprops/internal/domain/build"
	"github.com/poruru-code/keyprops/internal/infra/appversion"
	"github.com/poruru-code/keyprops/internal/infra/config"
	"github.com/poruru-code/keyprops/internal/infra/source"
	"github.com/poruru-code/keyprops/internal/usecase/credentials"
	"github.com/rs/zerolog"
)

func newConfigurator() Configurator {
	return New(credentials.Resolver{Opener: source.Opener{}}, zerolog.Nop())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigureWithoutPropertiesLeavesReleaseUnsigned(t *testing.T) {
	root := t.TempDir()
	got, err := newConfigurator().Configure(context.Background(), Request{ProjectRoot: root})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if got.Credentials.Present {
		t.Fatalf("expected absent credentials")
	}
	release, _ := got.Plan.BuildType(build.Release)
	if release.SigningConfig != nil {
		t.Fatalf("release signing should be unset")
	}
	if got.Plan.Android.ApplicationID != build.DefaultApplicationID {
		t.Fatalf("unexpected android config: %+v", got.Plan.Android)
	}
	if got.VersionOrigin != appversion.OriginDefault {
		t.Fatalf("unexpected version origin: %s", got.VersionOrigin)
	}
}

func TestConfigureAppliesConfigAndVersion(t *testing.T) {
	app := t.TempDir()
	root := filepath.Join(app, "android")
	writeFile(t, filepath.Join(app, "pubspec.yaml"), "name: arcane\nversion: 1.2.0+5\n")
	writeFile(t, filepath.Join(root, "signing", "release.properties"),
		"storeFile=../upload.jks\nstorePassword=pw1\nkeyAlias=upload\nkeyPassword=pw2\n")
	cfgPath, err := config.ProjectConfigPath(root)
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	cfg := config.DefaultProjectConfig()
	cfg.Properties = "signing/release.properties"
	cfg.Android.MinSdk = 26
	if err := config.SaveProjectConfig(cfgPath, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	got, err := newConfigurator().Configure(context.Background(), Request{ProjectRoot: root})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if got.Plan.Android.MinSdk != 26 || got.Plan.Android.VersionName != "1.2.0" || got.Plan.Android.VersionCode != 5 {
		t.Fatalf("unexpected android config: %+v", got.Plan.Android)
	}
	release, _ := got.Plan.BuildType(build.Release)
	if release.SigningConfig == nil || *release.SigningConfig.StoreFile != filepath.Join(app, "upload.jks") {
		t.Fatalf("unexpected release signing: %+v", release.SigningConfig)
	}
}

func TestConfigurePropertiesOverride(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ci.properties"), "keyAlias=ci\n")

	got, err := newConfigurator().Configure(context.Background(), Request{ProjectRoot: root, Properties: "ci.properties"})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if !got.Credentials.Present || *got.Credentials.Credentials.KeyAlias != "ci" {
		t.Fatalf("override not used: %+v", got.Credentials)
	}
}

func TestConfigureSkipCredentialsDoesNotReadSource(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "key.properties"), "storePassword=\\u12zz\n")

	got, err := newConfigurator().Configure(context.Background(), Request{ProjectRoot: root, SkipCredentials: true})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if got.Credentials.Present {
		t.Fatalf("credentials should not be resolved")
	}
	if got.Credentials.Location != "key.properties" {
		t.Fatalf("unexpected location: %q", got.Credentials.Location)
	}
}

func TestConfigureRecordsInvalidAndroidConfig(t *testing.T) {
	c := newConfigurator()
	c.LoadConfig = func(string) (config.ProjectConfig, error) {
		cfg := config.DefaultProjectConfig()
		cfg.Android.MinSdk = 99
		return cfg, nil
	}
	got, err := c.Configure(context.Background(), Request{ProjectRoot: t.TempDir()})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if got.AndroidErr == nil || !strings.Contains(got.AndroidErr.Error(), "minSdk") {
		t.Fatalf("expected android validation error, got %v", got.AndroidErr)
	}
}

func TestConfigureKeepsCredentialsWhenVersionFails(t *testing.T) {
	app := t.TempDir()
	root := filepath.Join(app, "android")
	writeFile(t, filepath.Join(app, "pubspec.yaml"), "name: arcane\nversion: 1.0.0+dev\n")
	writeFile(t, filepath.Join(root, "key.properties"), "storeFile=upload.jks\nkeyAlias=upload\n")

	got, err := newConfigurator().Configure(context.Background(), Request{ProjectRoot: root})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if got.AndroidErr == nil || !strings.Contains(got.AndroidErr.Error(), "resolve app version") {
		t.Fatalf("expected version error, got %v", got.AndroidErr)
	}
	if !got.Credentials.Present || *got.Credentials.Credentials.KeyAlias != "upload" {
		t.Fatalf("credentials not resolved: %+v", got.Credentials)
	}
	release, _ := got.Plan.BuildType(build.Release)
	if release.SigningConfig == nil {
		t.Fatalf("release signing should be bound")
	}
}

func TestConfigurePropagatesLoaderErrors(t *testing.T) {
	boom := errors.New("boom")
	c := newConfigurator()
	c.ResolveVersion = func(string, string) (build.AppVersion, appversion.Origin, error) {
		return build.AppVersion{}, "", boom
	}
	got, err := c.Configure(context.Background(), Request{ProjectRoot: t.TempDir()})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if !errors.Is(got.AndroidErr, boom) {
		t.Fatalf("expected version error, got %v", got.AndroidErr)
	}

	c.LoadConfig = func(string) (config.ProjectConfig, error) {
		return config.ProjectConfig{}, boom
	}
	if _, err := c.Configure(context.Background(), Request{ProjectRoot: t.TempDir()}); !errors.Is(err, boom) {
		t.Fatalf("expected config error, got %v", err)
	}
	if _, err := c.Configure(context.Background(), Request{}); err == nil {
		t.Fatalf("expected error for empty root")
	}
}

func TestConfigureFailsOnUnparseableSource(t *testing.T) {
	app := t.TempDir()
	root := filepath.Join(app, "android")
	writeFile(t, filepath.Join(app, "pubspec.yaml"), "version: 1.0.0+dev\n")
	writeFile(t, filepath.Join(root, "key.properties"), "storePassword=\\u12zz\n")

	if _, err := newConfigurator().Configure(context.Background(), Request{ProjectRoot: root}); err == nil {
		t.Fatalf("expected parse error")
	}
}
