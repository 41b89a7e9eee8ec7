// Package watch provides the runner logic that reprints the list whenever
// the stored snapshot changes.
package watch

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/daylist/pkg/logging"
	"tableflip.dev/daylist/pkg/printers"
	"tableflip.dev/daylist/pkg/store"
)

// Watch follows the persisted state until the context ends.
type Watch struct {
	ShowID      bool
	Persistence store.Persistence
	Log         *log.Logger
	Out         io.Writer
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}
	if n.Log == nil {
		n.Log = logging.Discard()
	}
	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	n.print(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			n.Log.Debug("snapshot changed", "event", ev.Type)
			n.print(ctx)
		}
	}
}

func (n *Watch) print(ctx context.Context) {
	s := store.LoadOrDefault(ctx, readOnly{n.Persistence}, n.Log)
	pp := printers.PrettyPrint{ShowID: n.ShowID, Theme: s.Theme, Out: n.Out}
	pp.NewLine()
	pp.Title("Today")
	pp.List(s.Sorted()...)
}

// readOnly hides the persistence's recovery hooks: a watcher must not move
// a snapshot aside while another process may be writing it.
type readOnly struct {
	store.Persistence
}
