// Where: internal/meta/meta.go
// What: CLI-local identity and layout constants.
// Why: Keep names of the binary, env prefix, and project files in one place.
package meta

const (
	// Project Identity
	AppName   = "keyprops"
	EnvPrefix = "KEYPROPS"

	// Directory Layout
	HomeDir        = ".keyprops"
	ConfigFileName = "config.yaml"

	// Android project files, relative to the project root (the android/ directory).
	PropertiesFile      = "key.properties"
	LocalPropertiesFile = "local.properties"
	PubspecFile         = "../pubspec.yaml"
)
