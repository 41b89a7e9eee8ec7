// Package theme holds the named color palettes the list can be shown in.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnknown is returned by Lookup when no palette has the requested name.
var ErrUnknown = errors.New("theme: unknown theme")

// ColorTheme is a named set of hex colors. It is always selected as a
// whole; nothing edits a single field of the active theme.
type ColorTheme struct {
	Name         string `json:"name"`
	Primary      string `json:"primary"`
	Background   string `json:"background"`
	Border       string `json:"border"`
	Text         string `json:"text"`
	InvertedText string `json:"invertedText"`
	Card         string `json:"card"`
	Danger       string `json:"danger"`
}

var (
	// Light is the default palette.
	Light = ColorTheme{
		Name:         "light",
		Primary:      "#f4bc25",
		Background:   "#fafafa",
		Border:       "#ccc",
		Text:         "#444",
		InvertedText: "#fafafa",
		Card:         "#e9e9e9",
		Danger:       "#ff5252",
	}

	// Dark swaps background and text for low-light use.
	Dark = ColorTheme{
		Name:         "dark",
		Primary:      "#f4bc25",
		Background:   "#222",
		Border:       "#888",
		Text:         "#fafafa",
		InvertedText: "#444",
		Card:         "#353535",
		Danger:       "#ff5252",
	}
)

var builtin = map[string]ColorTheme{
	Light.Name: Light,
	Dark.Name:  Dark,
}

// Default returns the theme used by a fresh store.
func Default() ColorTheme {
	return Light
}

// Lookup finds a built-in theme by name, ignoring case and surrounding space.
func Lookup(name string) (ColorTheme, error) {
	t, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorTheme{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return t, nil
}

// Names lists the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns every built-in theme, sorted by name.
func Builtin() []ColorTheme {
	names := Names()
	out := make([]ColorTheme, 0, len(names))
	for _, name := range names {
		out = append(out, builtin[name])
	}
	return out
}

// Colors returns the palette entries in a stable order, keyed by role.
func (t ColorTheme) Colors() [][2]string {
	return [][2]string{
		{"primary", t.Primary},
		{"background", t.Background},
		{"border", t.Border},
		{"text", t.Text},
		{"invertedText", t.InvertedText},
		{"card", t.Card},
		{"danger", t.Danger},
	}
}

// Validate checks that the theme is named and every color parses as hex.
func (t ColorTheme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("theme: name required")
	}
	for _, c := range t.Colors() {
		if _, err := colorful.Hex(c[1]); err != nil {
			return fmt.Errorf("theme %s: %s color %q: %w", t.Name, c[0], c[1], err)
		}
	}
	return nil
}

// IsDark reports whether the background is closer to black than white.
func (t ColorTheme) IsDark() bool {
	bg, err := colorful.Hex(t.Background)
	if err != nil {
		return false
	}
	l, _, _ := bg.Lab()
	return l < 0.5
}
