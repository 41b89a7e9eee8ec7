package app

import (
	"context"

	"tableflip.dev/daylist/pkg/action"
	"tableflip.dev/daylist/pkg/daily"
	"tableflip.dev/daylist/pkg/state"
	"tableflip.dev/daylist/pkg/store"
)

// Open restores the saved state (or the default one), builds a container
// that writes through to p and runs the daily reset sweep unless disabled
// with WithSweep(false). It is meant to be called once at start-up, before
// anything is shown.
func Open(ctx context.Context, p store.Persistence, opts ...Option) *Container {
	c := configure(append([]Option{WithPersistence(p)}, opts...))
	c.start(store.LoadOrDefault(ctx, c.persistence, c.log))
	if c.sweepOnOpen {
		c.Sweep()
	}
	return c
}

// Sweep resets daily items completed on an earlier day. Only the first call
// on a container does anything; it reports how many items were reset.
func (c *Container) Sweep() int {
	reset := 0
	c.sweep.Do(func() {
		c.DispatchThunk(func(s state.State) action.Action {
			a := daily.Sweep(s.List, c.clock())
			switch a := a.(type) {
			case nil:
			case action.Batch:
				reset = len(a.Actions)
			default:
				reset = 1
			}
			return a
		})
		if reset > 0 {
			c.log.Info("daily reset", "items", reset)
		}
	})
	return reset
}
