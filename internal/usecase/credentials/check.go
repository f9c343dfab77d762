// Where: internal/usecase/credentials/check.go
// What: Opt-in validation of resolved credentials.
// Why: The resolver is permissive; check reports what the build tool would reject.
package credentials

import (
	"os"

	"github.com/poruru-code/keyprops/internal/domain/build"
)

// Report summarizes the state of the release signing inputs.
type Report struct {
	Location        string
	Present         bool
	Missing         []string
	StoreFile       string
	StoreFileExists bool
}

// OK reports whether release signing is fully configured.
func (r Report) OK() bool {
	return r.Present && len(r.Missing) == 0 && r.StoreFileExists
}

// statFile is swapped in tests.
var statFile = os.Stat

// Check inspects a resolution result. The keystore path is resolved against projectRoot.
func Check(projectRoot string, result Result) Report {
	report := Report{
		Location: result.Location,
		Present:  result.Present,
	}
	if !result.Present {
		return report
	}
	report.Missing = result.Credentials.Missing()

	storeFile := build.ResolveStoreFile(projectRoot, result.Credentials.StoreFile)
	if storeFile == nil {
		return report
	}
	report.StoreFile = *storeFile
	info, err := statFile(report.StoreFile)
	report.StoreFileExists = err == nil && !info.IsDir()
	return report
}
