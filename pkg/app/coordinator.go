package app

import (
	"tableflip.dev/daylist/pkg/action"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/state"
)

// AddWithAutoID returns a thunk that adds draft with the next free id.
// The id is computed from the state the thunk is handed, so running it
// through DispatchThunk makes the read and the add one step.
func AddWithAutoID(draft item.Draft) Thunk {
	return func(s state.State) action.Action {
		return action.Add(draft.WithID(state.NextID(s.List)))
	}
}

// Patch edits an existing item. Returning false leaves the item alone.
type Patch func(it item.Item) (item.Item, bool)

// UpdateByID returns a thunk that applies patch to the item with id. found
// reports whether the item existed when the thunk ran.
func UpdateByID(id int, patch Patch, found *bool) Thunk {
	return func(s state.State) action.Action {
		it, ok := s.Find(id)
		if found != nil {
			*found = ok
		}
		if !ok {
			return nil
		}
		next, changed := patch(it)
		if !changed {
			return nil
		}
		next.ID = id
		return action.Update(next)
	}
}
