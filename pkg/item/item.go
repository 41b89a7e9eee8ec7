// Package item defines the todo list entry and its timestamp.
package item

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyTitle is returned when an item has no visible title.
var ErrEmptyTitle = errors.New("item: title required")

// Item is a single entry in the list. Items are plain values; every change
// produces a new Item.
type Item struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Note    string    `json:"note,omitempty"`
	IsDaily bool      `json:"isDaily"`
	IsDone  bool      `json:"isDone"`
	Updated Timestamp `json:"updated"`
}

// Draft is an item the caller has not been given an id for yet.
type Draft struct {
	Title   string
	Note    string
	IsDaily bool
	IsDone  bool
}

// WithID turns the draft into an item carrying id.
func (d Draft) WithID(id int) Item {
	return Item{
		ID:      id,
		Title:   strings.TrimSpace(d.Title),
		Note:    strings.TrimSpace(d.Note),
		IsDaily: d.IsDaily,
		IsDone:  d.IsDone,
	}
}

// Validate rejects drafts without a title.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Validate rejects items without a title.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Toggle flips the completion flag and stamps the change time.
func (i Item) Toggle(now time.Time) Item {
	return i.SetDone(!i.IsDone, now)
}

// SetDone sets the completion flag and stamps the change time.
func (i Item) SetDone(done bool, now time.Time) Item {
	i.IsDone = done
	i.Updated = At(now)
	return i
}

// Equal compares two items field by field, using time.Equal for Updated.
func (i Item) Equal(o Item) bool {
	return i.ID == o.ID &&
		i.Title == o.Title &&
		i.Note == o.Note &&
		i.IsDaily == o.IsDaily &&
		i.IsDone == o.IsDone &&
		i.Updated.Equal(o.Updated.Time)
}
