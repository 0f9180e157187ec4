package activityfeed

import (
	"sort"
	"strings"

	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
	"github.com/dalemusser/volunteerhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/volunteerhub/internal/app/system/lifecycle"
	"golang.org/x/text/cases"
)

// SortKey selects the feed ordering.
type SortKey string

const (
	SortDateDesc   SortKey = "date_desc"
	SortDateAsc    SortKey = "date_asc"
	SortPopularity SortKey = "popularity"
)

// ParseSort maps a request value to a SortKey; unknown values fall back to
// SortDateDesc.
func ParseSort(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortDateAsc, SortPopularity:
		return k
	}
	return SortDateDesc
}

const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// Filters are equality predicates combined with AND. Empty fields match
// everything.
type Filters struct {
	Status     lifecycle.Status
	Kind       Kind
	City       string
	Department string
}

// Params describes one list request.
type Params struct {
	Search   string
	Locale   bilingual.Locale
	Filters  Filters
	Sort     SortKey
	Page     int
	PageSize int
}

// Normalize clamps out-of-range values to their defaults.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	p.Sort = ParseSort(string(p.Sort))
	if !bilingual.Valid(p.Locale) {
		p.Locale = bilingual.Default
	}
	p.Search = strings.TrimSpace(p.Search)
	return p
}

// Result is one page of a query. Total counts every activity that passed
// the filters and search, before paging.
type Result struct {
	Items    []Activity
	Total    int
	Page     int
	PageSize int
}

// Query filters, searches, sorts, and pages feed. The feed is not modified.
// Calling Query twice with the same arguments yields the same items in the
// same order.
func Query(feed []Activity, p Params) Result {
	p = p.Normalize()
	fold := cases.Fold()

	var city, dept, needle string
	if c := strings.TrimSpace(p.Filters.City); c != "" {
		city = fold.String(c)
	}
	if d := strings.TrimSpace(p.Filters.Department); d != "" {
		dept = fold.String(d)
	}
	if p.Search != "" {
		needle = fold.String(p.Search)
	}

	matched := make([]Activity, 0, len(feed))
	for _, a := range feed {
		if p.Filters.Status != "" && a.Status != p.Filters.Status {
			continue
		}
		if p.Filters.Kind != "" && a.Kind != p.Filters.Kind {
			continue
		}
		if city != "" && fold.String(strings.TrimSpace(a.City)) != city {
			continue
		}
		if dept != "" && fold.String(strings.TrimSpace(a.Department)) != dept {
			continue
		}
		if needle != "" && !matches(a, needle, p.Locale, fold) {
			continue
		}
		matched = append(matched, a)
	}

	sortActivities(matched, p.Sort)

	res := Result{Total: len(matched), Page: p.Page, PageSize: p.PageSize}
	// Compare page counts before multiplying so a huge page cannot overflow.
	pages := (len(matched) + p.PageSize - 1) / p.PageSize
	if p.Page-1 >= pages {
		res.Items = []Activity{}
		return res
	}
	start := (p.Page - 1) * p.PageSize
	end := start + p.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	res.Items = matched[start:end]
	return res
}

func matches(a Activity, needle string, loc bilingual.Locale, fold cases.Caser) bool {
	if strings.Contains(fold.String(bilingual.Resolve(a.Title, loc)), needle) {
		return true
	}
	desc := htmlsanitize.StripTags(bilingual.Resolve(a.Description, loc))
	return strings.Contains(fold.String(desc), needle)
}

func sortActivities(items []Activity, key SortKey) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch key {
		case SortDateAsc:
			if !a.StartOrOpenDate.Equal(b.StartOrOpenDate) {
				return a.StartOrOpenDate.Before(b.StartOrOpenDate)
			}
		case SortPopularity:
			if a.RegisteredCount != b.RegisteredCount {
				return a.RegisteredCount > b.RegisteredCount
			}
		default:
			if !a.StartOrOpenDate.Equal(b.StartOrOpenDate) {
				return a.StartOrOpenDate.After(b.StartOrOpenDate)
			}
		}
		return a.ID < b.ID
	})
}

// FindByID returns the activity with the given feed ID.
func FindByID(feed []Activity, id string) (Activity, bool) {
	for _, a := range feed {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// Facets lists the distinct values available for the city and department
// filters.
type Facets struct {
	Cities      []string `json:"cities"`
	Departments []string `json:"departments"`
}

// BuildFacets collects distinct non-blank cities and departments from feed,
// sorted. Values differing only by case collapse to the first spelling seen.
func BuildFacets(feed []Activity) Facets {
	fold := cases.Fold()
	distinct := func(get func(Activity) string) []string {
		seen := make(map[string]bool)
		out := []string{}
		for _, a := range feed {
			v := strings.TrimSpace(get(a))
			if v == "" {
				continue
			}
			k := fold.String(v)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, v)
		}
		sort.Strings(out)
		return out
	}
	return Facets{
		Cities:      distinct(func(a Activity) string { return a.City }),
		Departments: distinct(func(a Activity) string { return a.Department }),
	}
}
