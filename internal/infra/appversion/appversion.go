// Where: internal/infra/appversion/appversion.go
// What: versionName/versionCode discovery.
// Why: Follow the framework order: local.properties first, then the pubspec version line.
package appversion

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poruru-code/keyprops/internal/domain/build"
	"github.com/poruru-code/keyprops/internal/infra/properties"
	"github.com/poruru-code/keyprops/internal/meta"
	"gopkg.in/yaml.v3"
)

const (
	keyVersionName = "flutter.versionName"
	keyVersionCode = "flutter.versionCode"
)

// Origin names where a version came from.
type Origin string

const (
	OriginLocalProperties Origin = "local.properties"
	OriginPubspec         Origin = "pubspec.yaml"
	OriginDefault         Origin = "default"
)

type pubspec struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Resolve returns the app version for the project. Missing files fall through to defaults.
func Resolve(projectRoot, pubspecPath string) (build.AppVersion, Origin, error) {
	version, ok, err := fromLocalProperties(filepath.Join(projectRoot, meta.LocalPropertiesFile))
	if err != nil {
		return build.AppVersion{}, "", err
	}
	if ok {
		return version, OriginLocalProperties, nil
	}

	version, ok, err = fromPubspec(pubspecPath)
	if err != nil {
		return build.AppVersion{}, "", err
	}
	if ok {
		return version, OriginPubspec, nil
	}
	return build.AppVersion{Name: build.DefaultVersionName, Code: build.DefaultVersionCode}, OriginDefault, nil
}

func fromLocalProperties(path string) (build.AppVersion, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return build.AppVersion{}, false, nil
		}
		return build.AppVersion{}, false, fmt.Errorf("read %s: %w", path, err)
	}
	set, err := properties.Decode(data, properties.ISO88591)
	if err != nil {
		return build.AppVersion{}, false, fmt.Errorf("%s: %w", path, err)
	}

	name, hasName := set.Get(keyVersionName)
	code, hasCode := set.Get(keyVersionCode)
	if !hasName && !hasCode {
		return build.AppVersion{}, false, nil
	}
	version := build.AppVersion{Name: strings.TrimSpace(name), Code: build.DefaultVersionCode}
	if version.Name == "" {
		version.Name = build.DefaultVersionName
	}
	if hasCode {
		parsed, err := strconv.Atoi(strings.TrimSpace(code))
		if err != nil || parsed <= 0 {
			return build.AppVersion{}, false, fmt.Errorf("%s: invalid %s %q", path, keyVersionCode, code)
		}
		version.Code = parsed
	}
	return version, true, nil
}

func fromPubspec(path string) (build.AppVersion, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return build.AppVersion{}, false, nil
		}
		return build.AppVersion{}, false, fmt.Errorf("read %s: %w", path, err)
	}
	var doc pubspec
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return build.AppVersion{}, false, fmt.Errorf("decode %s: %w", path, err)
	}
	if strings.TrimSpace(doc.Version) == "" {
		return build.AppVersion{}, false, nil
	}
	version, err := build.ParseAppVersion(doc.Version)
	if err != nil {
		return build.AppVersion{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return version, true, nil
}
