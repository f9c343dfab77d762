package command

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru-code/keyprops/internal/constants"
	"github.com/poruru-code/keyprops/internal/infra/source"
)

var errNoQueuedValue = errors.New("no queued prompt value")

type testEnv struct {
	root   string
	deps   Dependencies
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

// newTestEnv creates an android/ project with a settings file and deps whose
// working directory is that project.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	for _, key := range []string{constants.EnvRoot, constants.EnvProperties, constants.EnvLogLevel, "CLI_CMD"} {
		unsetEnv(t, key)
	}

	root := filepath.Join(t.TempDir(), "android")
	writeTestFile(t, filepath.Join(root, "settings.gradle.kts"), "include(\":app\")\n")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return testEnv{
		root:   root,
		out:    out,
		errOut: errOut,
		deps: Dependencies{
			Out:           out,
			ErrOut:        errOut,
			Getwd:         func() (string, error) { return root, nil },
			Opener:        source.Opener{},
			IsInteractive: func() bool { return true },
		},
	}
}

// unsetEnv removes key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

type fakePrompter struct {
	inputs    []string
	passwords []string
	titles    []string
}

func (p *fakePrompter) Input(title, _ string) (string, error) {
	p.titles = append(p.titles, title)
	return popQueued(&p.inputs)
}

func (p *fakePrompter) Password(title string) (string, error) {
	p.titles = append(p.titles, title)
	return popQueued(&p.passwords)
}

func popQueued(values *[]string) (string, error) {
	if len(*values) == 0 {
		return "", errNoQueuedValue
	}
	value := (*values)[0]
	*values = (*values)[1:]
	return value, nil
}
