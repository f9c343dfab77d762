// Where: internal/domain/build/plan.go
// What: Signing and build-type wiring for the application module.
// Why: Bind resolved credentials to the release variant only.
package build

import (
	"path/filepath"

	"github.com/poruru-code/keyprops/internal/domain/signing"
)

// SigningConfig is a named signingConfigs { } entry.
// StoreFile is resolved against the project root; the other fields are forwarded verbatim.
type SigningConfig struct {
	Name          string  `json:"name" yaml:"name"`
	StoreFile     *string `json:"storeFile" yaml:"storeFile"`
	StorePassword *string `json:"storePassword" yaml:"storePassword"`
	KeyAlias      *string `json:"keyAlias" yaml:"keyAlias"`
	KeyPassword   *string `json:"keyPassword" yaml:"keyPassword"`
}

// BuildType is a buildTypes { } entry. A nil SigningConfig leaves signing to the toolchain.
type BuildType struct {
	Variant       Variant        `json:"variant" yaml:"variant"`
	Debuggable    bool           `json:"debuggable" yaml:"debuggable"`
	SigningConfig *SigningConfig `json:"signingConfig" yaml:"signingConfig"`
}

// Plan is the full configuration handed to the downstream build tool.
type Plan struct {
	Android    AndroidConfig `json:"android" yaml:"android"`
	BuildTypes []BuildType   `json:"buildTypes" yaml:"buildTypes"`
}

// Configure binds credentials to the release build type.
// When present is false the release signing config stays unset.
func Configure(cfg AndroidConfig, projectRoot string, creds signing.CredentialSet, present bool) Plan {
	release := BuildType{Variant: Release}
	if present {
		release.SigningConfig = releaseSigning(projectRoot, creds)
	}
	return Plan{
		Android: cfg,
		BuildTypes: []BuildType{
			{Variant: Debug, Debuggable: true},
			release,
		},
	}
}

// BuildType returns the entry for a variant.
func (p Plan) BuildType(v Variant) (BuildType, bool) {
	for _, bt := range p.BuildTypes {
		if bt.Variant == v {
			return bt, true
		}
	}
	return BuildType{}, false
}

func releaseSigning(projectRoot string, creds signing.CredentialSet) *SigningConfig {
	return &SigningConfig{
		Name:          string(Release),
		StoreFile:     ResolveStoreFile(projectRoot, creds.StoreFile),
		StorePassword: creds.StorePassword,
		KeyAlias:      creds.KeyAlias,
		KeyPassword:   creds.KeyPassword,
	}
}

// ResolveStoreFile resolves a keystore path against the project root.
// Absolute paths are returned unchanged; nil stays nil.
func ResolveStoreFile(projectRoot string, storeFile *string) *string {
	if storeFile == nil {
		return nil
	}
	path := *storeFile
	if !filepath.IsAbs(path) && projectRoot != "" {
		path = filepath.Join(projectRoot, path)
	}
	return &path
}

// Redacted returns a copy with passwords masked for display.
func (s SigningConfig) Redacted() SigningConfig {
	masked := signing.CredentialSet{StorePassword: s.StorePassword, KeyPassword: s.KeyPassword}.Redacted()
	s.StorePassword = masked.StorePassword
	s.KeyPassword = masked.KeyPassword
	return s
}
