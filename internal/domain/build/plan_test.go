// Where: internal/domain/build/plan_test.go
// What: Tests for release signing wiring.
// Why: Guard that only release consumes credentials and absent sources leave signing unset.
package build

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/poruru-code/keyprops/internal/domain/signing"
)

func strPtr(s string) *string { return &s }

func TestConfigureAbsentLeavesReleaseUnsigned(t *testing.T) {
	plan := Configure(DefaultAndroidConfig(), "/work/android", signing.CredentialSet{}, false)

	release, ok := plan.BuildType(Release)
	if !ok {
		t.Fatalf("release build type missing")
	}
	if release.SigningConfig != nil {
		t.Fatalf("expected unset release signing, got %+v", release.SigningConfig)
	}
	debug, ok := plan.BuildType(Debug)
	if !ok || !debug.Debuggable || debug.SigningConfig != nil {
		t.Fatalf("unexpected debug build type: %+v", debug)
	}
}

func TestConfigurePresentBindsRelease(t *testing.T) {
	root := filepath.FromSlash("/work/android")
	creds := signing.CredentialSet{
		StoreFile:     strPtr("upload.jks"),
		StorePassword: strPtr("pw1"),
		KeyAlias:      strPtr("alias1"),
		KeyPassword:   strPtr("pw2"),
	}
	plan := Configure(DefaultAndroidConfig(), root, creds, true)

	release, _ := plan.BuildType(Release)
	want := &SigningConfig{
		Name:          "release",
		StoreFile:     strPtr(filepath.Join(root, "upload.jks")),
		StorePassword: strPtr("pw1"),
		KeyAlias:      strPtr("alias1"),
		KeyPassword:   strPtr("pw2"),
	}
	if diff := cmp.Diff(want, release.SigningConfig); diff != "" {
		t.Fatalf("release signing mismatch (-want +got):\n%s", diff)
	}
	debug, _ := plan.BuildType(Debug)
	if debug.SigningConfig != nil {
		t.Fatalf("debug must not consume credentials")
	}
}

func TestConfigurePropagatesMissingKeys(t *testing.T) {
	creds := signing.CredentialSet{
		StoreFile:     strPtr("upload.jks"),
		StorePassword: strPtr("pw1"),
		KeyPassword:   strPtr("pw2"),
	}
	plan := Configure(DefaultAndroidConfig(), "/root", creds, true)
	release, _ := plan.BuildType(Release)
	if release.SigningConfig == nil {
		t.Fatalf("expected release signing config")
	}
	if release.SigningConfig.KeyAlias != nil {
		t.Fatalf("missing keyAlias should propagate as nil")
	}
}

func TestResolveStoreFile(t *testing.T) {
	root := filepath.FromSlash("/work/android")
	abs := filepath.FromSlash("/secure/upload.jks")

	if got := ResolveStoreFile(root, nil); got != nil {
		t.Fatalf("nil should stay nil, got %q", *got)
	}
	if got := ResolveStoreFile(root, strPtr("keys/upload.jks")); *got != filepath.Join(root, "keys", "upload.jks") {
		t.Fatalf("relative path not resolved against root: %q", *got)
	}
	if got := ResolveStoreFile(root, strPtr(abs)); *got != abs {
		t.Fatalf("absolute path changed: %q", *got)
	}
}

func TestSigningConfigRedacted(t *testing.T) {
	cfg := SigningConfig{Name: "release", StorePassword: strPtr("pw1"), KeyAlias: strPtr("alias1")}
	red := cfg.Redacted()
	if *red.StorePassword == "pw1" || red.KeyPassword != nil || *red.KeyAlias != "alias1" {
		t.Fatalf("unexpected redaction: %+v", red)
	}
	if *cfg.StorePassword != "pw1" {
		t.Fatalf("Redacted mutated the original")
	}
}
