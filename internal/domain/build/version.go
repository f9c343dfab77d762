// Where: internal/domain/build/version.go
// What: App version parsing from the framework manifest format.
// Why: versionName/versionCode are derived from "name+code" strings.
package build

import (
	"fmt"
	"strconv"
	"strings"
)

// AppVersion is the pair applied to defaultConfig.
type AppVersion struct {
	Name string
	Code int
}

// ParseAppVersion parses "1.2.3+4". A missing build number yields code 1.
func ParseAppVersion(raw string) (AppVersion, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AppVersion{}, fmt.Errorf("version is empty")
	}
	name, code, found := strings.Cut(trimmed, "+")
	if name == "" {
		return AppVersion{}, fmt.Errorf("version %q has no name", raw)
	}
	if !found {
		return AppVersion{Name: name, Code: DefaultVersionCode}, nil
	}
	parsed, err := strconv.Atoi(code)
	if err != nil || parsed <= 0 {
		return AppVersion{}, fmt.Errorf("version %q has invalid build number", raw)
	}
	return AppVersion{Name: name, Code: parsed}, nil
}

// Apply copies the version into the config.
func (v AppVersion) Apply(cfg AndroidConfig) AndroidConfig {
	if v.Name != "" {
		cfg.VersionName = v.Name
	}
	if v.Code > 0 {
		cfg.VersionCode = v.Code
	}
	return cfg
}
