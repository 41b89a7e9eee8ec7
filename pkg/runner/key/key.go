// Package key provides CLI helpers to display the glyph legend.
package key

import (
	"context"
	"io"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/printers"
)

// Key prints a glyph legend.
type Key struct {
	Out io.Writer
}

// Do renders the legend to stdout.
func (k *Key) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}
	pp.NewLine()
	pp.Key(glyph.DefaultGlyphs()...)
	return nil
}
