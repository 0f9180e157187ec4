// Package activityfeed merges events, volunteer opportunities, and
// programs into one feed of Activity values and answers list queries
// against it. Everything here is a pure transform over records already
// loaded by the stores; callers pass in the request's clock reading.
package activityfeed

import (
	"strings"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/lifecycle"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

// Kind identifies the source record type of an Activity.
type Kind string

const (
	KindEvent       Kind = "event"
	KindOpportunity Kind = "opportunity"
	KindProgram     Kind = "program"
)

// Kinds lists every kind in feed order.
var Kinds = []Kind{KindEvent, KindOpportunity, KindProgram}

// ParseKind accepts a kind name, its plural, or surrounding whitespace.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "event", "events":
		return KindEvent, true
	case "opportunity", "opportunities":
		return KindOpportunity, true
	case "program", "programs":
		return KindProgram, true
	}
	return "", false
}

// Fallbacks for optional source fields.
const (
	DefaultImageURL     = "/assets/images/activity-placeholder.jpg"
	DefaultOrganization = "VolunteerHub"
	DefaultLocation     = "Улаанбаатар"
)

// Activity is one normalized feed entry. It lives for a single request and
// is never written back to storage.
type Activity struct {
	ID              string
	Kind            Kind
	Title           models.BilingualString
	Description     models.BilingualString
	Location        string
	City            string
	Department      string
	Organization    string
	ImageURL        string
	StartOrOpenDate time.Time
	Deadline        time.Time // zero when the source has none
	Capacity        int
	RegisteredCount int
	Status          lifecycle.Status
}

// SeatsLeft returns the remaining capacity, or -1 when capacity is unbounded.
func (a Activity) SeatsLeft() int {
	if a.Capacity <= 0 {
		return -1
	}
	if left := a.Capacity - a.RegisteredCount; left > 0 {
		return left
	}
	return 0
}
