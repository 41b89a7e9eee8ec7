// Package state holds the application state and the reducer that derives
// each next state from the previous one and an action.
package state

import (
	"sort"

	"tableflip.dev/daylist/pkg/action"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/theme"
)

// State is the root of everything the application remembers. The order of
// List is insertion order.
type State struct {
	List  []item.Item      `json:"list"`
	Theme theme.ColorTheme `json:"theme"`
}

// Default is the state of a fresh install.
func Default() State {
	return State{
		List:  []item.Item{},
		Theme: theme.Default(),
	}
}

// Clone returns a copy that shares no backing array with s.
func (s State) Clone() State {
	return State{List: cloneList(s.List, 0), Theme: s.Theme}
}

// Equal compares two states by value.
func (s State) Equal(o State) bool {
	if s.Theme != o.Theme || len(s.List) != len(o.List) {
		return false
	}
	for i := range s.List {
		if !s.List[i].Equal(o.List[i]) {
			return false
		}
	}
	return true
}

// Find returns the item with id.
func (s State) Find(id int) (item.Item, bool) {
	if i := indexOf(s.List, id); i >= 0 {
		return s.List[i], true
	}
	return item.Item{}, false
}

// Sorted returns a display ordering: pending items first, then done items,
// each in insertion order. The stored order is left alone.
func (s State) Sorted() []item.Item {
	out := cloneList(s.List, 0)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].IsDone && out[j].IsDone
	})
	return out
}

// NextID is the id the next added item receives: one past the largest id
// in the list, or 0 for an empty list. The largest id is used rather than
// the last item's so that deletes and reorders cannot cause a collision.
func NextID(list []item.Item) int {
	if len(list) == 0 {
		return 0
	}
	highest := list[0].ID
	for _, it := range list[1:] {
		if it.ID > highest {
			highest = it.ID
		}
	}
	return highest + 1
}

// Reduce applies a to s and returns the resulting state. It never mutates
// s; every transition that changes the list gets a fresh backing array.
// Unknown ids and unknown or nil actions leave the state as it was.
func Reduce(s State, a action.Action) State {
	switch a := a.(type) {
	case action.AddItem:
		list := cloneList(s.List, 1)
		return State{List: append(list, a.Item), Theme: s.Theme}

	case action.UpdateItem:
		i := indexOf(s.List, a.Item.ID)
		if i < 0 {
			return s
		}
		list := cloneList(s.List, 0)
		list[i] = a.Item
		return State{List: list, Theme: s.Theme}

	case action.DeleteItem:
		i := indexOf(s.List, a.ID)
		if i < 0 {
			return s
		}
		list := make([]item.Item, 0, len(s.List)-1)
		list = append(list, s.List[:i]...)
		list = append(list, s.List[i+1:]...)
		return State{List: list, Theme: s.Theme}

	case action.SetTheme:
		return State{List: cloneList(s.List, 0), Theme: a.Theme}

	case action.Batch:
		next := s
		for _, child := range a.Actions {
			next = Reduce(next, child)
		}
		return next
	}
	return s
}

func indexOf(list []item.Item, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneList(list []item.Item, extra int) []item.Item {
	out := make([]item.Item, len(list), len(list)+extra)
	copy(out, list)
	return out
}
