// Where: internal/usecase/configure/configure.go
// What: Build plan assembly for the application module.
// Why: Combine project config, app version, and signing credentials into one plan per invocation.
package configure

import (
	"context"
	"fmt"
	"strings"

	"github.com/poruru-code/keyprops/internal/domain/build"
	"github.com/poruru-code/keyprops/internal/infra/appversion"
	"github.com/poruru-code/keyprops/internal/infra/config"
	"github.com/poruru-code/keyprops/internal/infra/properties"
	"github.com/poruru-code/keyprops/internal/usecase/credentials"
	"github.com/rs/zerolog"
)

// ConfigLoader loads the project config under a root.
type ConfigLoader func(projectRoot string) (config.ProjectConfig, error)

// VersionResolver resolves versionName/versionCode.
type VersionResolver func(projectRoot, pubspecPath string) (build.AppVersion, appversion.Origin, error)

// Request captures the inputs of a configuration run.
type Request struct {
	ProjectRoot string
	// Properties overrides the configured properties location when set.
	Properties string
	// SkipCredentials leaves the properties source unread.
	SkipCredentials bool
}

// Result is the assembled plan plus the inputs it was derived from.
type Result struct {
	ProjectRoot   string
	Config        config.ProjectConfig
	Credentials   credentials.Result
	VersionOrigin appversion.Origin
	Plan          build.Plan

	// AndroidErr is set when the app version or the android overrides are invalid.
	// Plan.Android then holds the best-effort constants and must not be rendered.
	AndroidErr error
}

// Configurator wires the loaders used to build a plan.
type Configurator struct {
	LoadConfig     ConfigLoader
	ResolveVersion VersionResolver
	Resolver       credentials.Resolver
	Logger         zerolog.Logger
}

// New returns a Configurator backed by the real loaders.
func New(resolver credentials.Resolver, logger zerolog.Logger) Configurator {
	return Configurator{
		LoadConfig:     config.LoadProjectConfig,
		ResolveVersion: appversion.Resolve,
		Resolver:       resolver,
		Logger:         logger,
	}
}

// Configure resolves everything needed for the build. Credentials are read exactly once.
// Only config and properties source failures are returned as errors; version and
// android constant problems are reported through Result.AndroidErr.
func (c Configurator) Configure(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.ProjectRoot) == "" {
		return Result{}, fmt.Errorf("project root is required")
	}
	loadConfig := c.LoadConfig
	if loadConfig == nil {
		loadConfig = config.LoadProjectConfig
	}
	resolveVersion := c.ResolveVersion
	if resolveVersion == nil {
		resolveVersion = appversion.Resolve
	}

	cfg, err := loadConfig(req.ProjectRoot)
	if err != nil {
		return Result{}, err
	}
	if override := strings.TrimSpace(req.Properties); override != "" {
		cfg.Properties = override
	}
	encoding, err := properties.ParseEncoding(cfg.Encoding)
	if err != nil {
		return Result{}, err
	}

	creds := credentials.Result{Location: cfg.PropertiesLocation()}
	if !req.SkipCredentials {
		creds, err = c.Resolver.Resolve(ctx, credentials.Request{
			ProjectRoot: req.ProjectRoot,
			Location:    cfg.PropertiesLocation(),
			Encoding:    encoding,
		})
		if err != nil {
			return Result{}, err
		}
	}

	android, origin, androidErr := resolveAndroid(req.ProjectRoot, cfg, resolveVersion)
	if androidErr != nil {
		c.Logger.Debug().Err(androidErr).Msg("build constants unresolved")
	} else {
		c.Logger.Debug().
			Str("versionName", android.VersionName).
			Int("versionCode", android.VersionCode).
			Str("origin", string(origin)).
			Msg("app version resolved")
	}

	return Result{
		ProjectRoot:   req.ProjectRoot,
		Config:        cfg,
		Credentials:   creds,
		VersionOrigin: origin,
		AndroidErr:    androidErr,
		Plan:          build.Configure(android, req.ProjectRoot, creds.Credentials, creds.Present),
	}, nil
}

func resolveAndroid(projectRoot string, cfg config.ProjectConfig, resolveVersion VersionResolver) (build.AndroidConfig, appversion.Origin, error) {
	android := cfg.Android.Apply(build.DefaultAndroidConfig())
	version, origin, err := resolveVersion(projectRoot, cfg.PubspecPath(projectRoot))
	if err != nil {
		return android, appversion.OriginDefault, fmt.Errorf("resolve app version: %w", err)
	}
	android = version.Apply(android)
	if err := android.Validate(); err != nil {
		return android, origin, fmt.Errorf("android config: %w", err)
	}
	return android, origin, nil
}
