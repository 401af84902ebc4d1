// Package markdown renders pattern write-ups for the terminal.
package markdown

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Styles accepted by New.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// ErrUnknownStyle is returned for a style name glamour does not provide.
var ErrUnknownStyle = errors.New("markdown style must be auto, dark, light, or notty")

// noMarginStyle is a JSON style that removes document margins.
// It is applied on top of the selected standard style.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// ValidStyle reports whether style is accepted by New.
func ValidStyle(style string) bool {
	switch style {
	case StyleAuto, StyleDark, StyleLight, StyleNoTTY:
		return true
	default:
		return false
	}
}

// ResolveStyle maps "auto" to dark or light using the terminal background.
func ResolveStyle(style string) string {
	if style != StyleAuto {
		return style
	}
	if termenv.HasDarkBackground() {
		return StyleDark
	}
	return StyleLight
}

// Renderer wraps glamour with gofcat-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	style    string
	width    int
}

// New creates a markdown renderer with the given style and word wrap width.
func New(style string, width int) (*Renderer, error) {
	if !ValidStyle(style) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	resolved := ResolveStyle(style)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(resolved),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, style: resolved, width: width}, nil
}

// Style returns the resolved glamour style name.
func (r *Renderer) Style() string {
	return r.style
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
