// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (release tag or Git commit) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version is set at link time: -ldflags "-X github.com/poruru-code/keyprops/internal/version.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the linked release version when set.
// Otherwise it derives one from build info: the module version for
// `go install` builds, or the short VCS revision, optionally appended
// with "(dirty)" if the tree was modified. It returns "dev" when
// nothing is available.
func GetVersion() string {
	if v := strings.TrimSpace(Version); v != "" {
		return v
	}

	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			// Shorten revision to 7 chars if possible
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
