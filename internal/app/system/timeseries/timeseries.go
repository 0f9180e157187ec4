// Package timeseries turns timestamped records into a gap-filled series
// of calendar days for bar charts.
package timeseries

import (
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
)

// DateKeyLayout is the layout of DailyPoint.DateKey.
const DateKeyLayout = "2006-01-02"

const (
	DefaultWindowDays = 7
	MaxWindowDays     = 366
)

// DailyPoint is one bar: a calendar day, its chart label, and how many
// records fell on it.
type DailyPoint struct {
	DateKey string `json:"date"`
	Label   string `json:"label"`
	Count   int    `json:"count"`
}

var weekdayLabels = map[bilingual.Locale][7]string{
	bilingual.EN: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	bilingual.MN: {"Ня", "Да", "Мя", "Лх", "Пү", "Ба", "Бя"},
}

type options struct {
	locale bilingual.Locale
}

// Option customizes AggregateDaily.
type Option func(*options)

// WithLocale selects the language of the weekday labels (English by default).
func WithLocale(loc bilingual.Locale) Option {
	return func(o *options) {
		if _, ok := weekdayLabels[loc]; ok {
			o.locale = loc
		}
	}
}

// AggregateDaily counts stamps per calendar day over the windowDays days
// ending on now's day, oldest first. Days without records get Count 0.
//
// Days are taken in now's location: every stamp is converted into that
// location before its date key is computed, so a stamp stored in UTC
// lands on the same calendar day the window uses. Zero stamps and stamps
// outside the window are ignored.
//
// windowDays <= 0 falls back to DefaultWindowDays; values above
// MaxWindowDays are clamped.
func AggregateDaily(stamps []time.Time, windowDays int, now time.Time, opts ...Option) []DailyPoint {
	o := options{locale: bilingual.EN}
	for _, opt := range opts {
		opt(&o)
	}
	labels := weekdayLabels[o.locale]

	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if windowDays > MaxWindowDays {
		windowDays = MaxWindowDays
	}

	loc := now.Location()
	counts := make(map[string]int, windowDays)
	for _, ts := range stamps {
		if ts.IsZero() {
			continue
		}
		counts[DayKey(ts, loc)]++
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	points := make([]DailyPoint, windowDays)
	for i := range points {
		d := today.AddDate(0, 0, i-(windowDays-1))
		key := d.Format(DateKeyLayout)
		points[i] = DailyPoint{
			DateKey: key,
			Label:   labels[d.Weekday()],
			Count:   counts[key],
		}
	}
	return points
}

// DayKey formats t's calendar day in loc as "YYYY-MM-DD".
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateKeyLayout)
}

// WindowStart returns the first instant of a windowDays-long window
// ending on now's day, after the same clamping AggregateDaily applies.
// Stores use it to bound the records they load.
func WindowStart(windowDays int, now time.Time) time.Time {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if windowDays > MaxWindowDays {
		windowDays = MaxWindowDays
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(windowDays - 1))
}

// Stamps extracts one timestamp per record.
func Stamps[T any](records []T, at func(T) time.Time) []time.Time {
	out := make([]time.Time, 0, len(records))
	for _, r := range records {
		out = append(out, at(r))
	}
	return out
}

// Total sums the counts of a series.
func Total(points []DailyPoint) int {
	n := 0
	for _, p := range points {
		n += p.Count
	}
	return n
}
