// Where: internal/infra/ui/console.go
// What: Plain-text rendering of keyprops reports.
// Why: resolve, check, render, and init print the same block and status line shapes.
package ui

import (
	"fmt"
	"io"
	"strings"
)

const itemIndent = "   "

// Console writes report blocks and status lines. With emoji disabled the
// status lines fall back to [ok] and [warn] tags for CI logs.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

// NewWithEmoji creates a Console writing to out.
func NewWithEmoji(out io.Writer, enabled bool) *Console {
	return &Console{Out: out, EmojiEnabled: enabled}
}

// Block prints a titled group of rows with the values aligned on the widest key.
//
//	🔑 Signing (release)
//	   source:        key.properties
//	   storePassword: ****
func (c *Console) Block(emoji, title string, rows []KeyValue) {
	fmt.Fprintln(c.Out)
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
	width := 0
	for _, row := range rows {
		width = max(width, len(row.Key)+1)
	}
	for _, row := range rows {
		fmt.Fprintf(c.Out, "%s%-*s %v\n", itemIndent, width, row.Key+":", row.Value)
	}
	fmt.Fprintln(c.Out)
}

// Success prints a completed step, such as a written key.properties.
func (c *Console) Success(msg string) {
	c.status("✅", "[ok] ", msg)
}

// Info prints an unprefixed line.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", msg)
}

// Warn prints a non-fatal problem. Missing signing keys are warnings, not errors.
func (c *Console) Warn(msg string) {
	c.status("⚠️", "[warn] ", msg)
}

func (c *Console) status(emoji, tag, msg string) {
	prefix := c.emojiPrefix(emoji)
	if prefix == "" {
		prefix = tag
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
