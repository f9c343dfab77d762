// Where: internal/infra/interaction/prompter.go
// What: Interactive input helpers using the huh library.
// Why: Collect signing values with masked echo for passwords.
package interaction

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title, placeholder string, secret bool, input *string) error {
	field := huh.NewInput().
		Title(title).
		Value(input)
	if placeholder != "" {
		field.Placeholder(placeholder)
	}
	if secret {
		field.EchoMode(huh.EchoModePassword)
	}
	return field.Run()
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, placeholder string) (string, error) {
	var input string
	if err := runInputPrompt(title, placeholder, false, &input); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return input, nil
}

func (p HuhPrompter) Password(title string) (string, error) {
	var input string
	if err := runInputPrompt(title, "", true, &input); err != nil {
		return "", fmt.Errorf("prompt password: %w", err)
	}
	return input, nil
}
