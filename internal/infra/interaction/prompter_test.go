package interaction

import (
	"errors"
	"testing"
)

func TestHuhPrompterInputUsesRunner(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	var gotTitle, gotPlaceholder string
	var gotSecret bool
	runInputPrompt = func(title, placeholder string, secret bool, input *string) error {
		gotTitle, gotPlaceholder, gotSecret = title, placeholder, secret
		*input = "upload"
		return nil
	}

	got, err := (HuhPrompter{}).Input("Key alias", "upload")
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if got != "upload" || gotTitle != "Key alias" || gotPlaceholder != "upload" || gotSecret {
		t.Fatalf("unexpected prompt call: %q %q %q %v", got, gotTitle, gotPlaceholder, gotSecret)
	}
}

func TestHuhPrompterPasswordIsSecret(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	var gotSecret bool
	runInputPrompt = func(_, _ string, secret bool, input *string) error {
		gotSecret = secret
		*input = "pw1"
		return nil
	}

	got, err := (HuhPrompter{}).Password("Store password")
	if err != nil {
		t.Fatalf("Password() error = %v", err)
	}
	if got != "pw1" || !gotSecret {
		t.Fatalf("Password() = %q, secret=%v", got, gotSecret)
	}
}

func TestHuhPrompterWrapsError(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })
	runInputPrompt = func(string, string, bool, *string) error {
		return errors.New("tty unavailable")
	}

	_, err := (HuhPrompter{}).Password("Store password")
	if err == nil || err.Error() != "prompt password: tty unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}
