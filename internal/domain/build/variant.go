// Where: internal/domain/build/variant.go
// What: Build variant enumeration.
// Why: Only the release variant consumes signing credentials.
package build

import (
	"errors"
	"fmt"
	"strings"
)

// Variant names a build type.
type Variant string

const (
	Debug   Variant = "debug"
	Release Variant = "release"
)

// ErrUnknownVariant is returned when a variant name is not recognized.
var ErrUnknownVariant = errors.New("unknown build variant")

// Variants lists every supported variant.
var Variants = []Variant{Debug, Release}

// ParseVariant converts a name (case-insensitive) into a Variant.
func ParseVariant(name string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(name))) {
	case Debug:
		return Debug, nil
	case Release:
		return Release, nil
	default:
		return "", fmt.Errorf("%w: %q (expected debug or release)", ErrUnknownVariant, name)
	}
}

// ConsumesCredentials reports whether the variant is signed with external credentials.
func (v Variant) ConsumesCredentials() bool {
	return v == Release
}

func (v Variant) String() string {
	return string(v)
}
