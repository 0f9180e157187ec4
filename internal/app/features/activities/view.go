// internal/app/features/activities/view.go
package activities

import (
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/activityfeed"
	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
)

// activityView is an Activity with its bilingual fields resolved.
type activityView struct {
	ID              string     `json:"id"`
	Kind            string     `json:"kind"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	City            string     `json:"city,omitempty"`
	Department      string     `json:"department,omitempty"`
	Organization    string     `json:"organization"`
	ImageURL        string     `json:"image_url"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Capacity        int        `json:"capacity"`
	RegisteredCount int        `json:"registered_count"`
	SeatsLeft       int        `json:"seats_left"`
	Status          string     `json:"status"`
}

type listResponse struct {
	Items    []activityView      `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Facets   activityfeed.Facets `json:"facets"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func toView(a activityfeed.Activity, loc bilingual.Locale) activityView {
	return activityView{
		ID:              a.ID,
		Kind:            string(a.Kind),
		Title:           bilingual.Resolve(a.Title, loc),
		Description:     bilingual.Resolve(a.Description, loc),
		Location:        a.Location,
		City:            a.City,
		Department:      a.Department,
		Organization:    a.Organization,
		ImageURL:        a.ImageURL,
		StartDate:       timePtr(a.StartOrOpenDate),
		Deadline:        timePtr(a.Deadline),
		Capacity:        a.Capacity,
		RegisteredCount: a.RegisteredCount,
		SeatsLeft:       a.SeatsLeft(),
		Status:          string(a.Status),
	}
}

func toViews(items []activityfeed.Activity, loc bilingual.Locale) []activityView {
	out := make([]activityView, 0, len(items))
	for _, a := range items {
		out = append(out, toView(a, loc))
	}
	return out
}
