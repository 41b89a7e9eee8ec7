// Package action describes the requested changes to the list state.
//
// Actions are plain values. The set of actions is closed: only the types in
// this package implement Action, so the reducer can switch over them
// exhaustively.
package action

import (
	"fmt"

	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/theme"
)

// Kind names an action variant.
type Kind int

const (
	KindAdd Kind = iota
	KindUpdate
	KindDelete
	KindSetTheme
	KindBatch
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "ADD"
	case KindUpdate:
		return "UPDATE"
	case KindDelete:
		return "DELETE"
	case KindSetTheme:
		return "SET_THEME"
	case KindBatch:
		return "BATCH"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is a requested state change.
type Action interface {
	Kind() Kind
	isAction()
}

// AddItem appends Item to the end of the list.
type AddItem struct {
	Item item.Item
}

// UpdateItem replaces the item with the same id.
type UpdateItem struct {
	Item item.Item
}

// DeleteItem removes the item with ID.
type DeleteItem struct {
	ID int
}

// SetTheme replaces the active theme.
type SetTheme struct {
	Theme theme.ColorTheme
}

// Batch applies Actions in order as one transition.
type Batch struct {
	Actions []Action
}

func (AddItem) Kind() Kind    { return KindAdd }
func (UpdateItem) Kind() Kind { return KindUpdate }
func (DeleteItem) Kind() Kind { return KindDelete }
func (SetTheme) Kind() Kind   { return KindSetTheme }
func (Batch) Kind() Kind      { return KindBatch }

func (AddItem) isAction()    {}
func (UpdateItem) isAction() {}
func (DeleteItem) isAction() {}
func (SetTheme) isAction()   {}
func (Batch) isAction()      {}

// Add builds an AddItem. The item must already carry its id; see
// app.AddWithAutoID for id assignment.
func Add(i item.Item) Action {
	return AddItem{Item: i}
}

// Update builds an UpdateItem. Unknown ids are ignored by the reducer.
func Update(i item.Item) Action {
	return UpdateItem{Item: i}
}

// Delete builds a DeleteItem from a bare id.
func Delete(id int) Action {
	return DeleteItem{ID: id}
}

// SetColorTheme builds a SetTheme.
func SetColorTheme(t theme.ColorTheme) Action {
	return SetTheme{Theme: t}
}

// Combine builds a Batch. Nil actions are dropped; a single action is
// returned as is and an empty batch yields nil.
func Combine(actions ...Action) Action {
	kept := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a != nil {
			kept = append(kept, a)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return Batch{Actions: kept}
	}
}
