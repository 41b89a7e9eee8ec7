package item

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseTime parses an RFC3339 timestamp, with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is a point in time that is absent when zero.
type Timestamp struct {
	time.Time
}

// At normalizes t for storage: UTC, no monotonic reading.
func At(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{Time: t.Round(0).UTC()}
}

// SameDay reports whether t and then fall on the same local calendar day.
func (t Timestamp) SameDay(then time.Time) bool {
	a, b := t.Local(), then.Local()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// BeforeDay reports whether t's local calendar date is strictly earlier
// than then's. Time of day is ignored.
func (t Timestamp) BeforeDay(then time.Time) bool {
	a, b := t.Local(), then.Local()
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.YearDay() < b.YearDay()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTime(timestamp)
	if err != nil {
		return err
	}
	*t = At(parsed)
	return nil
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
