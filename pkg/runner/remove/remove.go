// Package remove provides the runner logic for deleting items.
package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/printers"
)

// Remove deletes an item by id.
type Remove struct {
	ID int

	Container *app.Container
	Out       io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Container == nil {
		return errors.New("can not delete, no state")
	}
	it, err := n.Container.Delete(n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Theme: n.Container.State().Theme, Out: n.Out}
	pp.Item("deleted", it)
	return nil
}
