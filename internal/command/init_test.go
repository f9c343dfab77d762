// Where: internal/command/init_test.go
// What: Tests for the init command.
// Why: Ensure prompts, defaults, overwrite protection, and file permissions.
package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/poruru-code/keyprops/internal/infra/properties"
)

func TestInitWritesPropertiesFile(t *testing.T) {
	env := newTestEnv(t)
	prompter := &fakePrompter{
		inputs:    []string{"", "release-key"},
		passwords: []string{"store-pw", ""},
	}
	env.deps.Prompter = prompter

	if code := Run([]string{"init"}, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, env.errOut.String())
	}

	path := filepath.Join(env.root, "key.properties")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("permissions = %o, want 600", perm)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	set, err := properties.Decode(data, properties.ISO88591)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := map[string]string{}
	for _, key := range set.Keys() {
		got[key], _ = set.Get(key)
	}
	want := map[string]string{
		"storeFile":     defaultStoreFile,
		"storePassword": "store-pw",
		"keyAlias":      "release-key",
		"keyPassword":   "store-pw",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}
	if len(prompter.titles) != 4 {
		t.Fatalf("expected 4 prompts, got %v", prompter.titles)
	}
}

func TestInitFlagsSkipPrompts(t *testing.T) {
	env := newTestEnv(t)
	prompter := &fakePrompter{passwords: []string{"a", "b"}}
	env.deps.Prompter = prompter

	args := []string{"init", "--store-file", "keys/app.jks", "--key-alias", "app"}
	if code := Run(args, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, env.errOut.String())
	}
	if len(prompter.titles) != 2 {
		t.Fatalf("expected only password prompts, got %v", prompter.titles)
	}
}

func TestInitRefusesExistingFile(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.root, "key.properties")
	writeTestFile(t, path, "keyAlias=keep\n")
	env.deps.Prompter = &fakePrompter{}

	if code := Run([]string{"init"}, env.deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(env.errOut.String(), "init --force") {
		t.Fatalf("expected --force hint: %s", env.errOut.String())
	}
	data, _ := os.ReadFile(path)
	if string(data) != "keyAlias=keep\n" {
		t.Fatalf("existing file modified: %q", data)
	}
}

func TestInitConfirmedOverwrite(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.root, "key.properties")
	writeTestFile(t, path, "keyAlias=old\n")
	env.deps.Prompter = &fakePrompter{inputs: []string{"", "confirmed"}, passwords: []string{"pw", ""}}
	var asked string
	env.deps.Confirm = func(message string) (bool, error) {
		asked = message
		return true, nil
	}

	if code := Run([]string{"init"}, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, env.errOut.String())
	}
	if !strings.Contains(asked, "Overwrite?") {
		t.Fatalf("unexpected confirmation: %q", asked)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "confirmed") {
		t.Fatalf("file not overwritten: %q", data)
	}
}

func TestInitForceOverwrites(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.root, "key.properties")
	writeTestFile(t, path, "keyAlias=old\n")
	env.deps.Prompter = &fakePrompter{inputs: []string{"", ""}, passwords: []string{"pw", "pw"}}

	if code := Run([]string{"init", "--force"}, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, env.errOut.String())
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), defaultKeyAlias) {
		t.Fatalf("file not overwritten: %q", data)
	}
}

func TestInitRequiresTerminal(t *testing.T) {
	env := newTestEnv(t)
	env.deps.Prompter = &fakePrompter{}
	env.deps.IsInteractive = func() bool { return false }

	if code := Run([]string{"init"}, env.deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(env.errOut.String(), errNotInteractive.Error()) {
		t.Fatalf("unexpected error: %s", env.errOut.String())
	}
}

func TestInitRejectsEmptyStorePassword(t *testing.T) {
	env := newTestEnv(t)
	env.deps.Prompter = &fakePrompter{inputs: []string{""}, passwords: []string{""}}

	if code := Run([]string{"init"}, env.deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(env.root, "key.properties")); !os.IsNotExist(err) {
		t.Fatalf("no file should be written, stat err = %v", err)
	}
}

func TestInitRejectsRemoteLocation(t *testing.T) {
	env := newTestEnv(t)
	env.deps.Prompter = &fakePrompter{}

	if code := Run([]string{"-p", "s3://bucket/key.properties", "init"}, env.deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(env.errOut.String(), "local files only") {
		t.Fatalf("unexpected error: %s", env.errOut.String())
	}
}
