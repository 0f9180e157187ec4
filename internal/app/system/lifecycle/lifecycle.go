// Package lifecycle derives an activity's registration state from its
// dates and capacity. The state is never stored; callers recompute it
// against the request's "now" every time an activity is read.
package lifecycle

import (
	"strings"
	"time"
)

// Status is the derived lifecycle state of an activity.
type Status string

const (
	Open  Status = "open"
	Full  Status = "full"
	Ended Status = "ended"
)

// Derive computes the lifecycle state. Zero times mean "not set".
//
// Rules are evaluated in order and the first match wins:
//  1. Ended when now has reached the deadline, or, when there is no
//     deadline, when now has reached startOrOpen.
//  2. Full when capacity > 0 and registered >= capacity.
//  3. Open.
//
// A capacity <= 0 is unbounded and never reports Full.
func Derive(now, deadline, startOrOpen time.Time, capacity, registered int) Status {
	if !deadline.IsZero() {
		if !now.Before(deadline) {
			return Ended
		}
	} else if !startOrOpen.IsZero() && !now.Before(startOrOpen) {
		return Ended
	}

	if capacity > 0 && registered >= capacity {
		return Full
	}
	return Open
}

// Parse maps a stored status string to a Status. Unknown or empty values
// report ok=false.
func Parse(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open", "active":
		return Open, true
	case "full":
		return Full, true
	case "ended", "closed", "finished":
		return Ended, true
	}
	return "", false
}

// Valid reports whether s is one of the three lifecycle states.
func Valid(s Status) bool {
	return s == Open || s == Full || s == Ended
}
