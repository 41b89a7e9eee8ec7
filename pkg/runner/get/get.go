// Package get provides the runner logic for listing items.
package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/printers"
)

// Filter selects which items are listed.
type Filter int

const (
	All Filter = iota
	Pending
	Done
	Daily
)

type Get struct {
	ShowID bool
	Filter Filter
	// Stored keeps insertion order instead of pending-first.
	Stored bool
	JSON   bool
	Out    io.Writer

	Container *app.Container
}

const title = "Today"

func (n *Get) Do(ctx context.Context) error {
	if n.Container == nil {
		return errors.New("can not get, no state")
	}

	s := n.Container.State()
	list := s.Sorted()
	if n.Stored {
		list = s.List
	}
	shown := n.filtered(list)

	open := 0
	for _, it := range s.List {
		if !it.IsDone {
			open++
		}
	}

	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"items": shown,
			"open":  open,
			"count": len(s.List),
			"theme": s.Theme.Name,
		})
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Theme: s.Theme, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount(title, open, len(s.List))
	pp.List(shown...)
	return nil
}

func (n *Get) filtered(all []item.Item) []item.Item {
	c := make([]item.Item, 0, len(all))
	for _, it := range all {
		switch n.Filter {
		case Pending:
			if it.IsDone {
				continue
			}
		case Done:
			if !it.IsDone {
				continue
			}
		case Daily:
			if !it.IsDaily {
				continue
			}
		}
		c = append(c, it)
	}
	return c
}
