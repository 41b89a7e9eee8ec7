// Package add provides the runner logic for adding items.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/printers"
)

// Add appends a new item to the list.
type Add struct {
	Title   string
	Note    string
	IsDaily bool
	ShowID  bool

	Container *app.Container
	Out       io.Writer
}

// Do adds the item and prints the resulting list.
func (n *Add) Do(ctx context.Context) error {
	if n.Container == nil {
		return errors.New("can not add, no state")
	}

	it, err := n.Container.Add(item.Draft{
		Title:   n.Title,
		Note:    n.Note,
		IsDaily: n.IsDaily,
	})
	if err != nil {
		return err
	}

	s := n.Container.State()
	pp := printers.PrettyPrint{ShowID: n.ShowID, Theme: s.Theme, Out: n.Out}
	pp.Item("added", it)
	pp.NewLine()
	pp.List(s.Sorted()...)
	return nil
}
