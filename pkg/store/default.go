package store

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/daylist/pkg/state"
)

// LoadOrDefault restores the saved state. It never fails: when there is no
// snapshot, or it cannot be read, the default state is returned instead.
// Unreadable snapshots are set aside when the persistence supports it.
func LoadOrDefault(ctx context.Context, p Persistence, logger *log.Logger) state.State {
	if p == nil {
		return state.Default()
	}
	s, err := p.Load(ctx)
	switch {
	case err == nil:
		return s
	case errors.Is(err, ErrNotFound):
		logger.Debug("no snapshot, starting empty")
		return state.Default()
	}

	logger.Warn("discarding unreadable snapshot", "err", err)
	if q, ok := p.(interface {
		quarantine(time.Time) (string, error)
	}); ok {
		if key, qerr := q.quarantine(time.Now()); qerr != nil {
			logger.Error("set aside unreadable snapshot", "err", qerr)
		} else if key != "" {
			logger.Warn("unreadable snapshot kept", "key", key)
		}
	}
	return state.Default()
}
