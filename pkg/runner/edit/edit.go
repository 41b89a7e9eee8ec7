// Package edit provides the runner logic for changing an item's text or
// recurrence.
package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/printers"
)

// Edit applies Changes to the item with ID.
type Edit struct {
	ID      int
	Changes app.Edit

	Container *app.Container
	Out       io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Container == nil {
		return errors.New("can not edit, no state")
	}
	if n.Changes.Title == nil && n.Changes.Note == nil && n.Changes.IsDaily == nil {
		return errors.New("nothing to change, set --title, --note or --daily")
	}
	it, err := n.Container.Edit(n.ID, n.Changes)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true, Theme: n.Container.State().Theme, Out: n.Out}
	pp.Item("updated", it)
	pp.List(it)
	return nil
}
