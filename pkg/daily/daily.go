// Package daily resets recurring items once a new calendar day starts.
package daily

import (
	"time"

	"tableflip.dev/daylist/pkg/action"
	"tableflip.dev/daylist/pkg/item"
)

// Due reports whether it must be reset at now: a daily item that was last
// toggled on an earlier local calendar day. Items never toggled are left
// alone.
func Due(it item.Item, now time.Time) bool {
	if !it.IsDaily || it.Updated.IsZero() {
		return false
	}
	return it.Updated.BeforeDay(now)
}

// Sweep returns the action that resets every due item in list: the item
// becomes pending and its update time moves to now. Several resets are
// combined into one batch. Nil means nothing is due.
func Sweep(list []item.Item, now time.Time) action.Action {
	var resets []action.Action
	for _, it := range list {
		if Due(it, now) {
			resets = append(resets, action.Update(it.SetDone(false, now)))
		}
	}
	return action.Combine(resets...)
}
