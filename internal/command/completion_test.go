// Where: internal/command/completion_test.go
// What: Tests for shell completion output.
// Why: Scripts must list every visible command and subcommand.
package command

import (
	"strings"
	"testing"
)

func TestCollectCompletionCommands(t *testing.T) {
	commands, subcommands := collectCompletionCommands(CLI{})

	want := []string{"resolve", "check", "render", "init", "config", "completion", "version"}
	if strings.Join(commands, " ") != strings.Join(want, " ") {
		t.Fatalf("commands = %v, want %v", commands, want)
	}
	if got := strings.Join(subcommands["config"], " "); got != "show init" {
		t.Fatalf("config subcommands = %q", got)
	}
	if got := strings.Join(subcommands["completion"], " "); got != "bash zsh fish" {
		t.Fatalf("completion subcommands = %q", got)
	}
}

func TestCompletionScripts(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{shell: "bash", want: []string{"complete -F _keyprops_completion keyprops", `compgen -W "show init"`}},
		{shell: "zsh", want: []string{"#compdef keyprops", `_values 'config' show init`}},
		{shell: "fish", want: []string{`complete -c keyprops -f -a "resolve check`, "__fish_seen_subcommand_from completion"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			env := newTestEnv(t)
			if code := Run([]string{"completion", tt.shell}, env.deps); code != 0 {
				t.Fatalf("expected exit code 0, got %d: %s", code, env.errOut.String())
			}
			for _, want := range tt.want {
				if !strings.Contains(env.out.String(), want) {
					t.Fatalf("missing %q in %s script:\n%s", want, tt.shell, env.out.String())
				}
			}
		})
	}
}
