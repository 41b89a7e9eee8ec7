// Package complete provides the runner logic for marking items done.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/printers"
)

// Complete marks an item done, or pending again when Undo is set.
type Complete struct {
	ID     int
	Undo   bool
	Toggle bool

	Container *app.Container
	Out       io.Writer
}

// Do executes the completion operation for the configured item ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Container == nil {
		return errors.New("can not complete, no state")
	}

	var err error
	if n.Toggle {
		_, err = n.Container.Toggle(n.ID)
	} else {
		_, err = n.Container.SetDone(n.ID, !n.Undo)
	}
	if err != nil {
		return err
	}

	s := n.Container.State()
	pp := printers.PrettyPrint{ShowID: true, Theme: s.Theme, Out: n.Out}
	pp.List(s.Sorted()...)
	return nil
}
