// Package app owns the live application state. A Container applies actions
// one at a time through the reducer, mirrors every change to persistence and
// notifies listeners.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/daylist/pkg/action"
	"tableflip.dev/daylist/pkg/logging"
	"tableflip.dev/daylist/pkg/state"
	"tableflip.dev/daylist/pkg/store"
)

// Clock returns the current time.
type Clock func() time.Time

// Option configures a Container.
type Option func(*Container)

// WithPersistence mirrors every state change to p.
func WithPersistence(p store.Persistence) Option {
	return func(c *Container) { c.persistence = p }
}

// WithClock replaces time.Now.
func WithClock(clock Clock) Option {
	return func(c *Container) { c.clock = clock }
}

// WithSweep controls whether Open runs the daily reset sweep.
func WithSweep(enabled bool) Option {
	return func(c *Container) { c.sweepOnOpen = enabled }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Container) { c.log = l }
}

// Container holds the current state. All mutation goes through Dispatch or
// DispatchThunk, which are serialized.
type Container struct {
	mu    sync.Mutex
	state state.State

	listeners map[int]func(state.State)
	nextID    int

	persistence store.Persistence
	writer      *writer
	clock       Clock
	log         *log.Logger
	sweep       sync.Once
	sweepOnOpen bool
}

// New creates a container starting from initial.
func New(initial state.State, opts ...Option) *Container {
	c := configure(opts)
	c.start(initial)
	return c
}

func configure(opts []Option) *Container {
	c := &Container{
		listeners:   make(map[int]func(state.State)),
		clock:       time.Now,
		sweepOnOpen: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	return c
}

func (c *Container) start(initial state.State) {
	c.state = initial.Clone()
	if c.persistence != nil {
		c.writer = newWriter(c.persistence, c.log)
	}
}

// State returns a snapshot of the current state. The caller owns it.
func (c *Container) State() state.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Now returns the container clock's time.
func (c *Container) Now() time.Time {
	return c.clock()
}

// Dispatch applies a and returns the resulting state.
func (c *Container) Dispatch(a action.Action) state.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(a)
}

// Thunk derives an action from the current state. It runs under the
// dispatch lock, so nothing else is applied between reading s and applying
// the returned action. A nil result dispatches nothing.
type Thunk func(s state.State) action.Action

// DispatchThunk runs t against the current state and applies its action.
func (c *Container) DispatchThunk(t Thunk) state.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(t(c.state.Clone()))
}

// Subscribe registers fn to receive every new state. Listeners run on the
// dispatching goroutine while the dispatch lock is held and must not
// dispatch themselves. The returned func removes the listener.
func (c *Container) Subscribe(fn func(state.State)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Close waits for pending writes to reach persistence, or for ctx to end.
func (c *Container) Close(ctx context.Context) error {
	if c.writer == nil {
		return nil
	}
	return c.writer.Close(ctx)
}

// apply must be called with c.mu held.
func (c *Container) apply(a action.Action) state.State {
	if a == nil {
		return c.state.Clone()
	}
	next := state.Reduce(c.state, a)
	if next.Equal(c.state) {
		c.log.Debug("action left state unchanged", "kind", a.Kind())
		return next.Clone()
	}
	c.state = next
	c.log.Debug("applied action", "kind", a.Kind(), "items", len(next.List))

	if c.writer != nil {
		c.writer.Enqueue(next.Clone())
	}
	for _, fn := range c.listeners {
		fn(next.Clone())
	}
	return next.Clone()
}
