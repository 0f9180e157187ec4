package activityfeed_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/dalemusser/volunteerhub/internal/app/system/activityfeed"
	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
	"github.com/dalemusser/volunteerhub/internal/app/system/lifecycle"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/stretchr/testify/require"
)

func sampleFeed() []activityfeed.Activity {
	return []activityfeed.Activity{
		{
			ID: "event:01", Kind: activityfeed.KindEvent,
			Title:           models.BilingualString{MN: "Хакатон 2025", EN: "Civic Hackathon 2025"},
			City:            "Ulaanbaatar",
			Department:      "Technology",
			StartOrOpenDate: day("2025-06-10"),
			RegisteredCount: 40,
			Status:          lifecycle.Open,
		},
		{
			ID: "event:02", Kind: activityfeed.KindEvent,
			Title:           models.BilingualString{MN: "Мод тарих", EN: "Tree planting"},
			Description:     models.BilingualString{EN: "<p>Green <strong>city</strong> day</p>"},
			City:            "Darkhan",
			Department:      "Environment",
			StartOrOpenDate: day("2025-05-01"),
			RegisteredCount: 12,
			Status:          lifecycle.Ended,
		},
		{
			ID: "opportunity:03", Kind: activityfeed.KindOpportunity,
			Title:           models.BilingualString{EN: "Library helper"},
			City:            "ulaanbaatar ",
			Department:      "Education",
			StartOrOpenDate: day("2025-07-01"),
			RegisteredCount: 12,
			Status:          lifecycle.Full,
		},
		{
			ID: "program:04", Kind: activityfeed.KindProgram,
			Title:           models.BilingualString{MN: "Хүүхдийн хөтөлбөр"},
			Description:     models.BilingualString{MN: "Зуны сургалт"},
			City:            "Erdenet",
			Department:      "Education",
			StartOrOpenDate: day("2025-07-01"),
			RegisteredCount: 0,
			Status:          lifecycle.Open,
		},
		{
			ID: "program:05", Kind: activityfeed.KindProgram,
			Title:           models.BilingualString{EN: "Elder care visits"},
			City:            "Ulaanbaatar",
			Department:      "Health",
			StartOrOpenDate: day("2025-03-15"),
			RegisteredCount: 30,
			Status:          lifecycle.Open,
		},
	}
}

func ids(items []activityfeed.Activity) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.ID
	}
	return out
}

func TestQuery_SearchOneMatch(t *testing.T) {
	res := activityfeed.Query(sampleFeed(), activityfeed.Params{
		Search:   "hackathon",
		Locale:   bilingual.EN,
		Sort:     activityfeed.SortDateDesc,
		Page:     1,
		PageSize: 6,
	})
	require.Len(t, res.Items, 1)
	require.Equal(t, 1, res.Total)
	require.Equal(t, "event:01", res.Items[0].ID)
}

func TestQuery_SearchUsesResolvedLocale(t *testing.T) {
	feed := sampleFeed()

	// MN side is blank for program:05, so the EN title is searched.
	res := activityfeed.Query(feed, activityfeed.Params{Search: "ELDER", Locale: bilingual.MN})
	require.Equal(t, []string{"program:05"}, ids(res.Items))

	// event:01 resolves to its MN title, which does not contain "civic".
	res = activityfeed.Query(feed, activityfeed.Params{Search: "civic", Locale: bilingual.MN})
	require.Empty(t, res.Items)
	require.NotNil(t, res.Items)
}

func TestQuery_SearchDescriptionIgnoresMarkup(t *testing.T) {
	feed := sampleFeed()
	res := activityfeed.Query(feed, activityfeed.Params{Search: "green city", Locale: bilingual.EN})
	require.Equal(t, []string{"event:02"}, ids(res.Items))

	res = activityfeed.Query(feed, activityfeed.Params{Search: "strong", Locale: bilingual.EN})
	require.Zero(t, res.Total)
}

func TestQuery_Filters(t *testing.T) {
	feed := sampleFeed()
	tests := []struct {
		name    string
		filters activityfeed.Filters
		want    []string
	}{
		{"status", activityfeed.Filters{Status: lifecycle.Open}, []string{"program:04", "event:01", "program:05"}},
		{"kind", activityfeed.Filters{Kind: activityfeed.KindProgram}, []string{"program:04", "program:05"}},
		{"city folded", activityfeed.Filters{City: "  ULAANBAATAR"}, []string{"opportunity:03", "event:01", "program:05"}},
		{"department and kind", activityfeed.Filters{Department: "education", Kind: activityfeed.KindProgram}, []string{"program:04"}},
		{"no match", activityfeed.Filters{City: "Khovd"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := activityfeed.Query(feed, activityfeed.Params{Filters: tt.filters})
			require.Equal(t, tt.want, ids(res.Items))
			require.Equal(t, len(tt.want), res.Total)
		})
	}
}

func TestQuery_Sorts(t *testing.T) {
	feed := sampleFeed()

	res := activityfeed.Query(feed, activityfeed.Params{Sort: activityfeed.SortDateAsc, PageSize: 10})
	require.Equal(t, []string{"program:05", "event:02", "event:01", "opportunity:03", "program:04"}, ids(res.Items))

	res = activityfeed.Query(feed, activityfeed.Params{Sort: activityfeed.SortPopularity, PageSize: 10})
	require.Equal(t, []string{"event:01", "program:05", "event:02", "opportunity:03", "program:04"}, ids(res.Items))

	res = activityfeed.Query(feed, activityfeed.Params{Sort: "newest-first", PageSize: 10})
	require.Equal(t, []string{"opportunity:03", "program:04", "event:01", "event:02", "program:05"}, ids(res.Items))
}

func TestQuery_Paging(t *testing.T) {
	feed := sampleFeed()

	res := activityfeed.Query(feed, activityfeed.Params{Page: 2, PageSize: 2})
	require.Equal(t, []string{"event:01", "event:02"}, ids(res.Items))
	require.Equal(t, 5, res.Total)

	res = activityfeed.Query(feed, activityfeed.Params{Page: 3, PageSize: 2})
	require.Equal(t, []string{"program:05"}, ids(res.Items))

	res = activityfeed.Query(feed, activityfeed.Params{Page: 9, PageSize: 2})
	require.NotNil(t, res.Items)
	require.Empty(t, res.Items)
	require.Equal(t, 5, res.Total)

	res = activityfeed.Query(feed, activityfeed.Params{Page: math.MaxInt, PageSize: 4})
	require.NotNil(t, res.Items)
	require.Empty(t, res.Items)
	require.Equal(t, math.MaxInt, res.Page)

	res = activityfeed.Query(nil, activityfeed.Params{Page: 1, PageSize: 2})
	require.NotNil(t, res.Items)
	require.Empty(t, res.Items)

	res = activityfeed.Query(feed, activityfeed.Params{Page: -3, PageSize: -1})
	require.Equal(t, 1, res.Page)
	require.Equal(t, activityfeed.DefaultPageSize, res.PageSize)

	res = activityfeed.Query(feed, activityfeed.Params{PageSize: 5000})
	require.Equal(t, activityfeed.MaxPageSize, res.PageSize)
}

func TestQuery_Idempotent(t *testing.T) {
	feed := sampleFeed()
	p := activityfeed.Params{Sort: activityfeed.SortPopularity, PageSize: 3, Page: 1}
	first := activityfeed.Query(feed, p)
	second := activityfeed.Query(feed, p)
	require.Equal(t, first, second)
}

func TestQuery_DoesNotMutateFeed(t *testing.T) {
	feed := sampleFeed()
	before := ids(feed)
	activityfeed.Query(feed, activityfeed.Params{Sort: activityfeed.SortDateAsc, PageSize: 10})
	require.Equal(t, before, ids(feed))
}

func TestQuery_TiesBreakByID(t *testing.T) {
	var feed []activityfeed.Activity
	for i := 9; i >= 0; i-- {
		feed = append(feed, activityfeed.Activity{
			ID:              fmt.Sprintf("event:%02d", i),
			StartOrOpenDate: day("2025-01-01"),
		})
	}
	for _, key := range []activityfeed.SortKey{activityfeed.SortDateDesc, activityfeed.SortDateAsc, activityfeed.SortPopularity} {
		res := activityfeed.Query(feed, activityfeed.Params{Sort: key, PageSize: 3})
		require.Equal(t, []string{"event:00", "event:01", "event:02"}, ids(res.Items), "sort %s", key)
	}
}

func TestFindByID(t *testing.T) {
	a, ok := activityfeed.FindByID(sampleFeed(), "opportunity:03")
	require.True(t, ok)
	require.Equal(t, "Library helper", a.Title.EN)

	_, ok = activityfeed.FindByID(sampleFeed(), "event:99")
	require.False(t, ok)
}

func TestBuildFacets(t *testing.T) {
	f := activityfeed.BuildFacets(sampleFeed())
	require.Equal(t, []string{"Darkhan", "Erdenet", "Ulaanbaatar"}, f.Cities)
	require.Equal(t, []string{"Education", "Environment", "Health", "Technology"}, f.Departments)
}

func TestParseSort(t *testing.T) {
	require.Equal(t, activityfeed.SortDateAsc, activityfeed.ParseSort(" DATE_ASC "))
	require.Equal(t, activityfeed.SortPopularity, activityfeed.ParseSort("popularity"))
	require.Equal(t, activityfeed.SortDateDesc, activityfeed.ParseSort(""))
	require.Equal(t, activityfeed.SortDateDesc, activityfeed.ParseSort("random"))
}
