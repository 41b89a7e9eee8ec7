package app

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/daylist/pkg/action"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/state"
	"tableflip.dev/daylist/pkg/theme"
)

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("app: item not found")

// The methods below are the operations the CLI and MCP server share. They
// validate input and report missing ids; the reducer itself silently
// ignores both.

// Items returns the list in insertion order.
func (c *Container) Items() []item.Item {
	return c.State().List
}

// Get returns the item with id.
func (c *Container) Get(id int) (item.Item, error) {
	it, ok := c.State().Find(id)
	if !ok {
		return item.Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return it, nil
}

// Add stores a new item and returns it with its assigned id.
func (c *Container) Add(draft item.Draft) (item.Item, error) {
	if err := draft.Validate(); err != nil {
		return item.Item{}, err
	}
	next := c.DispatchThunk(AddWithAutoID(draft))
	return next.List[len(next.List)-1], nil
}

// SetDone marks the item done or pending and stamps the change time.
func (c *Container) SetDone(id int, done bool) (item.Item, error) {
	now := c.clock()
	return c.update(id, func(it item.Item) (item.Item, bool) {
		if it.IsDone == done {
			return it, false
		}
		return it.SetDone(done, now), true
	})
}

// Toggle flips the completion flag of the item.
func (c *Container) Toggle(id int) (item.Item, error) {
	now := c.clock()
	return c.update(id, func(it item.Item) (item.Item, bool) {
		return it.Toggle(now), true
	})
}

// Edit describes changes to an item's text and recurrence. Nil fields are
// left as they are.
type Edit struct {
	Title   *string
	Note    *string
	IsDaily *bool
}

// Edit applies e to the item.
func (c *Container) Edit(id int, e Edit) (item.Item, error) {
	if e.Title != nil && strings.TrimSpace(*e.Title) == "" {
		return item.Item{}, item.ErrEmptyTitle
	}
	return c.update(id, func(it item.Item) (item.Item, bool) {
		next := it
		if e.Title != nil {
			next.Title = strings.TrimSpace(*e.Title)
		}
		if e.Note != nil {
			next.Note = strings.TrimSpace(*e.Note)
		}
		if e.IsDaily != nil {
			next.IsDaily = *e.IsDaily
		}
		return next, !next.Equal(it)
	})
}

// Delete removes the item.
func (c *Container) Delete(id int) (item.Item, error) {
	var (
		removed item.Item
		found   bool
	)
	c.DispatchThunk(func(s state.State) action.Action {
		removed, found = s.Find(id)
		if !found {
			return nil
		}
		return action.Delete(id)
	})
	if !found {
		return item.Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return removed, nil
}

// UseTheme validates t and makes it the active theme.
func (c *Container) UseTheme(t theme.ColorTheme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.Dispatch(action.SetColorTheme(t))
	return nil
}

func (c *Container) update(id int, patch Patch) (item.Item, error) {
	var found bool
	next := c.DispatchThunk(UpdateByID(id, patch, &found))
	if !found {
		return item.Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	it, _ := next.Find(id)
	return it, nil
}
