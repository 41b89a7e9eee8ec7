// Package mcp provides the Model Context Protocol server integration for
// daylist.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/theme"
)

// Service adapts container operations to transport-friendly values.
type Service struct {
	Container *app.Container
}

var errNoContainer = errors.New("mcp: state container is not configured")

// AddItemOptions captures the parameters used to create a new item.
type AddItemOptions struct {
	Title   string
	Note    string
	IsDaily bool
}

// UpdateItemOptions describes a partial update. Nil fields are unchanged.
type UpdateItemOptions struct {
	ID      int
	Title   *string
	Note    *string
	IsDaily *bool
	IsDone  *bool
}

// ItemDTO is a transport-friendly projection of an item.
type ItemDTO struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Note    string `json:"note,omitempty"`
	IsDaily bool   `json:"isDaily"`
	IsDone  bool   `json:"isDone"`
	Status  string `json:"status"`
	Symbol  string `json:"symbol"`
	Updated string `json:"updated,omitempty"`
}

// ThemeDTO describes a palette and whether it is active.
type ThemeDTO struct {
	theme.ColorTheme
	Active bool `json:"active"`
}

// Summary is the whole state as served to clients.
type Summary struct {
	Items []ItemDTO        `json:"items"`
	Open  int              `json:"open"`
	Count int              `json:"count"`
	Theme theme.ColorTheme `json:"theme"`
}

// NewService builds a service over c.
func NewService(c *app.Container) *Service {
	return &Service{Container: c}
}

// ListItems returns items in display order, optionally only pending ones.
func (s *Service) ListItems(ctx context.Context, pendingOnly bool) (*Summary, error) {
	if s.Container == nil {
		return nil, errNoContainer
	}
	st := s.Container.State()
	sum := &Summary{Items: []ItemDTO{}, Count: len(st.List), Theme: st.Theme}
	for _, it := range st.Sorted() {
		if !it.IsDone {
			sum.Open++
		} else if pendingOnly {
			continue
		}
		sum.Items = append(sum.Items, toDTO(it))
	}
	return sum, nil
}

// AddItem stores a new item with the next free id.
func (s *Service) AddItem(ctx context.Context, opts AddItemOptions) (*ItemDTO, error) {
	if s.Container == nil {
		return nil, errNoContainer
	}
	it, err := s.Container.Add(item.Draft{
		Title:   opts.Title,
		Note:    opts.Note,
		IsDaily: opts.IsDaily,
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(it)
	return &dto, nil
}

// UpdateItem applies a partial update to an item.
func (s *Service) UpdateItem(ctx context.Context, opts UpdateItemOptions) (*ItemDTO, error) {
	if s.Container == nil {
		return nil, errNoContainer
	}
	it, err := s.Container.Get(opts.ID)
	if err != nil {
		return nil, err
	}
	if opts.Title != nil || opts.Note != nil || opts.IsDaily != nil {
		it, err = s.Container.Edit(opts.ID, app.Edit{
			Title:   opts.Title,
			Note:    opts.Note,
			IsDaily: opts.IsDaily,
		})
		if err != nil {
			return nil, err
		}
	}
	if opts.IsDone != nil {
		it, err = s.Container.SetDone(opts.ID, *opts.IsDone)
		if err != nil {
			return nil, err
		}
	}
	dto := toDTO(it)
	return &dto, nil
}

// ToggleItem flips an item between done and pending.
func (s *Service) ToggleItem(ctx context.Context, id int) (*ItemDTO, error) {
	if s.Container == nil {
		return nil, errNoContainer
	}
	it, err := s.Container.Toggle(id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(it)
	return &dto, nil
}

// DeleteItem removes an item and returns what was removed.
func (s *Service) DeleteItem(ctx context.Context, id int) (*ItemDTO, error) {
	if s.Container == nil {
		return nil, errNoContainer
	}
	it, err := s.Container.Delete(id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(it)
	return &dto, nil
}

// SetTheme activates a built-in theme by name.
func (s *Service) SetTheme(ctx context.Context, name string) (*ThemeDTO, error) {
	if s.Container == nil {
		return nil, errNoContainer
	}
	t, err := theme.Lookup(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if err := s.Container.UseTheme(t); err != nil {
		return nil, err
	}
	return &ThemeDTO{ColorTheme: t, Active: true}, nil
}

// Themes lists the built-in themes.
func (s *Service) Themes(ctx context.Context) ([]ThemeDTO, error) {
	if s.Container == nil {
		return nil, errNoContainer
	}
	active := s.Container.State().Theme.Name
	out := make([]ThemeDTO, 0, 2)
	for _, t := range theme.Builtin() {
		out = append(out, ThemeDTO{ColorTheme: t, Active: strings.EqualFold(t.Name, active)})
	}
	return out, nil
}

func toDTO(it item.Item) ItemDTO {
	g := glyph.For(it)
	dto := ItemDTO{
		ID:      it.ID,
		Title:   it.Title,
		Note:    it.Note,
		IsDaily: it.IsDaily,
		IsDone:  it.IsDone,
		Status:  g.Meaning,
		Symbol:  g.Symbol,
	}
	if !it.Updated.IsZero() {
		dto.Updated = it.Updated.String()
	}
	return dto
}
