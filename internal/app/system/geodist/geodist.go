// Package geodist groups volunteers by declared province for the map.
package geodist

import (
	"strings"

	"github.com/dalemusser/volunteerhub/internal/app/system/gazetteer"
)

// Marker sizing and colors used by the map renderer.
const (
	RadiusPerMember = 4
	MinRadius       = 15
	MaxRadius       = 50

	// EmptyRadius keeps provinces with no volunteers visible on the map.
	EmptyRadius = 8

	ActiveColor = "#2563eb"
	EmptyColor  = "#9ca3af"

	// SummaryNames is how many member names a tooltip lists.
	SummaryNames = 3
)

// Member is the slice of a user record the map needs.
type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Province string `json:"province"`
}

// ProvinceBucket is one map marker.
type ProvinceBucket struct {
	ProvinceName string   `json:"province"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Members      []Member `json:"members"`
	Count        int      `json:"count"`
	Radius       int      `json:"radius"`
	Color        string   `json:"color"`
	Summary      string   `json:"summary"`
	MoreCount    int      `json:"more_count"`
}

// AggregateByProvince returns one bucket per gazetteer entry, in gazetteer
// order, including provinces with no members. A member belongs to the
// bucket whose name equals its trimmed Province exactly. Members whose
// province matches no entry are left out of every bucket.
//
// The input slice is not modified.
func AggregateByProvince(members []Member, gz *gazetteer.Gazetteer) []ProvinceBucket {
	entries := gz.Entries()
	grouped := make([][]Member, len(entries))
	for _, m := range members {
		i := gz.IndexOf(m.Province)
		if i < 0 {
			continue
		}
		grouped[i] = append(grouped[i], m)
	}

	out := make([]ProvinceBucket, len(entries))
	for i, e := range entries {
		ms := grouped[i]
		if ms == nil {
			ms = []Member{}
		}
		out[i] = ProvinceBucket{
			ProvinceName: e.Name,
			Lat:          e.Lat,
			Lng:          e.Lng,
			Members:      ms,
			Count:        len(ms),
			Radius:       Radius(len(ms)),
			Color:        color(len(ms)),
			Summary:      summary(ms),
			MoreCount:    more(len(ms)),
		}
	}
	return out
}

// CountUnmatched reports how many members have a province that is not in
// the gazetteer (including blank provinces).
func CountUnmatched(members []Member, gz *gazetteer.Gazetteer) int {
	n := 0
	for _, m := range members {
		if gz.IndexOf(m.Province) < 0 {
			n++
		}
	}
	return n
}

// Radius is the marker radius for a bucket with count members.
func Radius(count int) int {
	if count <= 0 {
		return EmptyRadius
	}
	r := count * RadiusPerMember
	if r < MinRadius {
		return MinRadius
	}
	if r > MaxRadius {
		return MaxRadius
	}
	return r
}

func color(count int) string {
	if count > 0 {
		return ActiveColor
	}
	return EmptyColor
}

func summary(ms []Member) string {
	n := len(ms)
	if n > SummaryNames {
		n = SummaryNames
	}
	names := make([]string, 0, n)
	for _, m := range ms[:n] {
		names = append(names, strings.TrimSpace(m.Name))
	}
	return strings.Join(names, ", ")
}

func more(count int) int {
	if count > SummaryNames {
		return count - SummaryNames
	}
	return 0
}
