// Where: internal/infra/render/gradle.go
// What: Render the app module Gradle script.
// Why: Hand the resolved build constants to the downstream build tool without inlining secrets.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"unicode/utf8"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru-code/keyprops/internal/domain/build"
	"github.com/poruru-code/keyprops/internal/domain/signing"
	"github.com/poruru-code/keyprops/internal/meta"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const gradleTemplate = "app_build.gradle.kts.tmpl"

// ErrKotlinString marks a value that cannot be embedded in a Kotlin string literal.
var ErrKotlinString = errors.New("value is not a valid Kotlin string")

var (
	templateOnce sync.Once
	templateErr  error
	parsed       *template.Template
)

// GradleInput is the data passed to the app module template.
// SDK levels follow the Flutter plugin unless pinned; version values always do.
type GradleInput struct {
	Android        build.AndroidConfig
	PropertiesFile string
	PinCompileSdk  bool
	PinTargetSdk   bool
}

type gradleData struct {
	GradleInput
	Generator   string
	SigningKeys []string
}

// RenderAppGradle renders app/build.gradle.kts for the given config.
func RenderAppGradle(input GradleInput) (string, error) {
	tmpl, err := loadTemplate()
	if err != nil {
		return "", err
	}
	if input.PropertiesFile == "" {
		input.PropertiesFile = meta.PropertiesFile
	}
	data := gradleData{
		GradleInput: input,
		Generator:   meta.AppName,
		SigningKeys: signing.Keys,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, gradleTemplate, data); err != nil {
		return "", fmt.Errorf("render %s: %w", gradleTemplate, err)
	}
	return buf.String(), nil
}

func loadTemplate() (*template.Template, error) {
	templateOnce.Do(func() {
		parsed, templateErr = template.New("gradle").
			Funcs(sprig.TxtFuncMap()).
			Funcs(template.FuncMap{"kotlinString": kotlinString}).
			ParseFS(templateFS, "templates/*.tmpl")
		if templateErr != nil {
			templateErr = fmt.Errorf("parse gradle templates: %w", templateErr)
		}
	})
	return parsed, templateErr
}

// kotlinString quotes value as a Kotlin string literal. "$" is escaped so
// paths are never read as string templates.
func kotlinString(value string) (string, error) {
	if !utf8.ValidString(value) {
		return "", fmt.Errorf("%w: invalid UTF-8 in %q", ErrKotlinString, value)
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String(), nil
}
