package theme

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads a custom palette from a TOML file. Missing colors are taken
// from the built-in theme named by `base` (light when unset).
//
//	name = "solarized"
//	base = "dark"
//	primary = "#b58900"
func Load(path string) (ColorTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ColorTheme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML palette. See Load.
func Parse(data []byte) (ColorTheme, error) {
	var doc paletteFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return ColorTheme{}, fmt.Errorf("theme: parse: %w", err)
	}

	base := Default()
	if strings.TrimSpace(doc.Base) != "" {
		b, err := Lookup(doc.Base)
		if err != nil {
			return ColorTheme{}, err
		}
		base = b
	}

	t := merge(base, doc.theme())
	if err := t.Validate(); err != nil {
		return ColorTheme{}, err
	}
	return t, nil
}

func merge(base, over ColorTheme) ColorTheme {
	pick := func(a, b string) string {
		if strings.TrimSpace(b) != "" {
			return strings.TrimSpace(b)
		}
		return a
	}
	return ColorTheme{
		Name:         pick(base.Name, over.Name),
		Primary:      pick(base.Primary, over.Primary),
		Background:   pick(base.Background, over.Background),
		Border:       pick(base.Border, over.Border),
		Text:         pick(base.Text, over.Text),
		InvertedText: pick(base.InvertedText, over.InvertedText),
		Card:         pick(base.Card, over.Card),
		Danger:       pick(base.Danger, over.Danger),
	}
}

type paletteFile struct {
	Name         string `toml:"name"`
	Base         string `toml:"base"`
	Primary      string `toml:"primary"`
	Background   string `toml:"background"`
	Border       string `toml:"border"`
	Text         string `toml:"text"`
	InvertedText string `toml:"inverted_text"`
	Card         string `toml:"card"`
	Danger       string `toml:"danger"`
}

func (f paletteFile) theme() ColorTheme {
	return ColorTheme{
		Name:         f.Name,
		Primary:      f.Primary,
		Background:   f.Background,
		Border:       f.Border,
		Text:         f.Text,
		InvertedText: f.InvertedText,
		Card:         f.Card,
		Danger:       f.Danger,
	}
}
