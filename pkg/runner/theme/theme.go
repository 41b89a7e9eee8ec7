// Package theme provides the runner logic for listing and selecting color
// themes.
package theme

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/printers"
	palette "tableflip.dev/daylist/pkg/theme"
)

// Theme switches to Name, or to the palette in File. With neither set it
// lists the available themes.
type Theme struct {
	Name string
	File string

	Container *app.Container
	Out       io.Writer
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Container == nil {
		return errors.New("can not set theme, no state")
	}

	var (
		next palette.ColorTheme
		err  error
	)
	switch {
	case strings.TrimSpace(n.File) != "":
		next, err = palette.Load(n.File)
	case strings.TrimSpace(n.Name) != "":
		next, err = palette.Lookup(n.Name)
	default:
		pp := printers.PrettyPrint{Out: n.Out}
		pp.Themes(n.Container.State().Theme.Name, themes(n.Container)...)
		return nil
	}
	if err != nil {
		return err
	}
	if err := n.Container.UseTheme(next); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Theme: next, Out: n.Out}
	pp.Title("Theme set to " + next.Name)
	return nil
}

// themes lists the built-in palettes plus the active one when it is custom.
func themes(c *app.Container) []palette.ColorTheme {
	all := palette.Builtin()
	active := c.State().Theme
	if _, err := palette.Lookup(active.Name); err != nil {
		all = append(all, active)
	}
	return all
}
