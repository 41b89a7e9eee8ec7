package app

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/daylist/pkg/state"
	"tableflip.dev/daylist/pkg/store"
)

// writer saves snapshots in the order they were produced on a single
// goroutine. Enqueue never blocks; failed saves are logged and dropped,
// the in-memory state stays authoritative.
type writer struct {
	p   store.Persistence
	log *log.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []state.State
	closing bool
	done    chan struct{}
}

func newWriter(p store.Persistence, l *log.Logger) *writer {
	w := &writer{p: p, log: l, done: make(chan struct{})}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

func (w *writer) Enqueue(s state.State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closing {
		w.log.Warn("state change after close was not saved", "items", len(s.List))
		return
	}
	w.queue = append(w.queue, s)
	w.cond.Signal()
}

func (w *writer) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.closing {
			w.cond.Wait()
		}
		if len(w.queue) == 0 && w.closing {
			w.mu.Unlock()
			return
		}
		next := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		if err := w.p.Save(context.Background(), next); err != nil {
			w.log.Error("persist snapshot", "err", err)
		}
	}
}

// Close stops accepting snapshots and waits until the queue is drained.
func (w *writer) Close(ctx context.Context) error {
	w.mu.Lock()
	w.closing = true
	w.cond.Signal()
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
