// Where: internal/infra/config/project.go
// What: Project config load/save.
// Why: Manage <project_root>/.keyprops/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/keyprops/internal/domain/build"
	"github.com/poruru-code/keyprops/internal/infra/fileops"
	"github.com/poruru-code/keyprops/internal/meta"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks a config file that fails schema validation or decoding.
var ErrInvalidConfig = errors.New("invalid project config")

// ProjectConfig represents the <project_root>/.keyprops/config.yaml file.
type ProjectConfig struct {
	Version    int             `yaml:"version"`
	Properties string          `yaml:"properties,omitempty"`
	Encoding   string          `yaml:"encoding,omitempty"`
	Pubspec    string          `yaml:"pubspec,omitempty"`
	Android    AndroidOverride `yaml:"android,omitempty"`
}

// AndroidOverride replaces individual build constants. Zero values keep the default.
type AndroidOverride struct {
	Namespace     string `yaml:"namespace,omitempty"`
	ApplicationID string `yaml:"application_id,omitempty"`
	CompileSdk    int    `yaml:"compile_sdk,omitempty"`
	MinSdk        int    `yaml:"min_sdk,omitempty"`
	TargetSdk     int    `yaml:"target_sdk,omitempty"`
	NdkVersion    string `yaml:"ndk_version,omitempty"`
	JavaVersion   int    `yaml:"java_version,omitempty"`
}

// DefaultProjectConfig returns an initialized ProjectConfig with version set.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:    1,
		Properties: meta.PropertiesFile,
		Encoding:   "iso-8859-1",
		Pubspec:    meta.PubspecFile,
	}
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(projectRoot string) (string, error) {
	root := strings.TrimSpace(projectRoot)
	if root == "" {
		return "", fmt.Errorf("project root is required")
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Join(root, meta.HomeDir, meta.ConfigFileName), nil
}

// EnsureProjectConfig creates the project config file if it doesn't exist.
// It reports whether a file was written.
func EnsureProjectConfig(projectRoot string) (bool, error) {
	path, err := ProjectConfigPath(projectRoot)
	if err != nil {
		return false, fmt.Errorf("resolve project config path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, SaveProjectConfig(path, DefaultProjectConfig())
		}
		return false, fmt.Errorf("stat project config: %w", err)
	}
	return false, nil
}

// LoadProjectConfig reads the config under projectRoot. A missing file yields defaults.
func LoadProjectConfig(projectRoot string) (ProjectConfig, error) {
	path, err := ProjectConfigPath(projectRoot)
	if err != nil {
		return ProjectConfig{}, err
	}
	cfg, err := LoadProjectConfigFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultProjectConfig(), nil
	}
	return cfg, err
}

// LoadProjectConfigFile reads, validates, and decodes a config file.
func LoadProjectConfigFile(path string) (ProjectConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("read project config: %w", err)
	}
	if err := ValidateProjectConfig(payload); err != nil {
		return ProjectConfig{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// SaveProjectConfig atomically writes a ProjectConfig to path.
func SaveProjectConfig(path string, cfg ProjectConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode project config: %w", err)
	}

	if err := fileops.WriteFileAtomic(path, payload, 0o644); err != nil {
		return fmt.Errorf("save project config: %w", err)
	}
	return nil
}

// PropertiesLocation returns the configured source, falling back to key.properties.
func (c ProjectConfig) PropertiesLocation() string {
	if loc := strings.TrimSpace(c.Properties); loc != "" {
		return loc
	}
	return meta.PropertiesFile
}

// PubspecPath returns the pubspec location resolved against projectRoot.
func (c ProjectConfig) PubspecPath(projectRoot string) string {
	path := strings.TrimSpace(c.Pubspec)
	if path == "" {
		path = meta.PubspecFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectRoot, path)
	}
	return filepath.Clean(path)
}

// Apply overlays the configured overrides on base.
func (o AndroidOverride) Apply(base build.AndroidConfig) build.AndroidConfig {
	if o.Namespace != "" {
		base.Namespace = o.Namespace
	}
	if o.ApplicationID != "" {
		base.ApplicationID = o.ApplicationID
	}
	if o.CompileSdk > 0 {
		base.CompileSdk = o.CompileSdk
	}
	if o.MinSdk > 0 {
		base.MinSdk = o.MinSdk
	}
	if o.TargetSdk > 0 {
		base.TargetSdk = o.TargetSdk
	}
	if o.NdkVersion != "" {
		base.NdkVersion = o.NdkVersion
	}
	if o.JavaVersion > 0 {
		base.JavaVersion = o.JavaVersion
	}
	return base
}
