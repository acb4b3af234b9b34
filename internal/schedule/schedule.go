// Package schedule triggers profile changes at configured times of day.
package schedule

import (
	"errors"
	"fmt"
)

// ErrInvalidTime reports an out-of-range hour or minute.
var ErrInvalidTime = errors.New("invalid time, use 24-hour format (0-23 hours, 0-59 minutes)")

// Entry schedules one profile application at a time of day. Entries keep
// their creation order. The profile reference is checked when the entry is
// created but not afterwards.
type Entry struct {
	Profile string
	Hour    int
	Minute  int
	Enabled bool
}

// Validate checks the time-of-day ranges.
func (e Entry) Validate() error {
	if e.Hour < 0 || e.Hour > 23 || e.Minute < 0 || e.Minute > 59 {
		return fmt.Errorf("%02d:%02d: %w", e.Hour, e.Minute, ErrInvalidTime)
	}
	return nil
}

// String renders the entry for listings.
func (e Entry) String() string {
	state := "disabled"
	if e.Enabled {
		state = "enabled"
	}
	return fmt.Sprintf("%s at %02d:%02d (%s)", e.Profile, e.Hour, e.Minute, state)
}
