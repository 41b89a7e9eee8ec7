package commands

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/logging"
	"tableflip.dev/daylist/pkg/store"
	"tableflip.dev/daylist/pkg/theme"
)

const closeTimeout = 5 * time.Second

// session is what a command needs to run: the settings, the persistence
// they point at and a logger.
type session struct {
	settings    *store.Settings
	persistence store.Persistence
	log         *log.Logger
}

func openSession() (*session, error) {
	if where.ConfigPath != "" {
		if err := os.Setenv("DAYLIST_CONFIG_PATH", where.ConfigPath); err != nil {
			return nil, err
		}
	}
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{
		settings: settings,
		log:      logging.New(os.Stderr),
	}
	if where.Ephemeral {
		s.persistence = store.NewMemory()
	} else if s.persistence, err = store.Open(settings); err != nil {
		return nil, err
	}
	return s, nil
}

// withContainer opens the container, runs fn and waits for pending saves.
func withContainer(ctx context.Context, fn func(ctx context.Context, c *app.Container) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession()
	if err != nil {
		return err
	}

	_, loadErr := s.persistence.Load(ctx)
	fresh := errors.Is(loadErr, store.ErrNotFound)

	c := app.Open(ctx, s.persistence,
		app.WithLogger(s.log),
		app.WithSweep(s.settings.Sweep),
	)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := c.Close(closeCtx); err != nil {
			s.log.Error("saving state", "err", err)
		}
	}()

	if fresh {
		s.initialTheme(c)
	}
	return fn(ctx, c)
}

// initialTheme applies the configured theme to a store that has never been
// written.
func (s *session) initialTheme(c *app.Container) {
	name := s.settings.Theme
	if name == "" || name == c.State().Theme.Name {
		return
	}
	t, err := theme.Lookup(name)
	if err != nil {
		s.log.Warn("ignoring configured theme", "err", err)
		return
	}
	if err := c.UseTheme(t); err != nil {
		s.log.Warn("ignoring configured theme", "err", err)
	}
}
