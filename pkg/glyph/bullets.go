package glyph

import "tableflip.dev/daylist/pkg/item"

// Glyph is a symbol printed next to an item and what it means.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	return g.Symbol
}

var (
	Pending = Glyph{Key: "o", Symbol: "○", Meaning: "pending"}
	Done    = Glyph{Key: "x", Symbol: "●", Meaning: "done"}
	Daily   = Glyph{Key: "d", Symbol: "↻", Meaning: "repeats daily"}
	Note    = Glyph{Key: "-", Symbol: "⁃", Meaning: "note"}
)

// DefaultGlyphs lists every glyph in legend order.
func DefaultGlyphs() []Glyph {
	return []Glyph{Pending, Done, Daily, Note}
}

// For picks the status glyph of an item.
func For(it item.Item) Glyph {
	if it.IsDone {
		return Done
	}
	return Pending
}
