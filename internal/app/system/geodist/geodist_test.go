package geodist

import (
	"fmt"
	"testing"

	"github.com/dalemusser/volunteerhub/internal/app/system/gazetteer"
	"github.com/stretchr/testify/require"
)

func TestAggregateByProvince_TrimsAndCounts(t *testing.T) {
	gz := gazetteer.Default()
	members := []Member{
		{ID: "1", Name: "Бат", Province: "Улаанбаатар"},
		{ID: "2", Name: "Сараа", Province: "Улаанбаатар"},
		{ID: "3", Name: "Дорж", Province: "  Төв  "},
	}

	buckets := AggregateByProvince(members, gz)
	require.Len(t, buckets, gz.Len())

	for _, b := range buckets {
		switch b.ProvinceName {
		case "Улаанбаатар":
			require.Equal(t, 2, b.Count)
			require.Len(t, b.Members, 2)
		case "Төв":
			require.Equal(t, 1, b.Count)
			require.Equal(t, "3", b.Members[0].ID)
		default:
			require.Zero(t, b.Count, b.ProvinceName)
			require.NotNil(t, b.Members)
			require.Empty(t, b.Members)
		}
	}
}

func TestAggregateByProvince_DropsUnmatched(t *testing.T) {
	gz := gazetteer.Default()
	members := []Member{
		{ID: "1", Name: "A", Province: "Ulaanbaatar"},
		{ID: "2", Name: "B", Province: ""},
		{ID: "3", Name: "C", Province: "Дархан-Уул"},
	}

	buckets := AggregateByProvince(members, gz)

	total := 0
	for _, b := range buckets {
		total += b.Count
		require.NotEqual(t, "Ulaanbaatar", b.ProvinceName)
	}
	require.Equal(t, 1, total, "unmatched provinces must not be mapped")
	require.Len(t, buckets, gz.Len(), "no synthetic unknown bucket")
	require.Equal(t, 2, CountUnmatched(members, gz))
}

func TestAggregateByProvince_KeepsGazetteerOrderAndCoordinates(t *testing.T) {
	gz, err := gazetteer.New([]gazetteer.Entry{
		{Name: "B", Lat: 2, Lng: 20},
		{Name: "A", Lat: 1, Lng: 10},
	})
	require.NoError(t, err)

	buckets := AggregateByProvince(nil, gz)
	require.Equal(t, "B", buckets[0].ProvinceName)
	require.Equal(t, 20.0, buckets[0].Lng)
	require.Equal(t, "A", buckets[1].ProvinceName)
	require.Equal(t, EmptyRadius, buckets[1].Radius)
	require.Equal(t, EmptyColor, buckets[1].Color)
}

func TestAggregateByProvince_NeverDoubleCounts(t *testing.T) {
	gz := gazetteer.Default()
	var members []Member
	for i := 0; i < 40; i++ {
		p := gz.Entries()[i%gz.Len()].Name
		if i%5 == 0 {
			p = "nowhere"
		}
		members = append(members, Member{ID: fmt.Sprint(i), Name: fmt.Sprint("m", i), Province: p})
	}

	seen := map[string]bool{}
	sum := 0
	for _, b := range AggregateByProvince(members, gz) {
		sum += b.Count
		for _, m := range b.Members {
			require.False(t, seen[m.ID], "member %s in two buckets", m.ID)
			seen[m.ID] = true
		}
	}
	require.Equal(t, len(members)-CountUnmatched(members, gz), sum)
}

func TestAggregateByProvince_DoesNotMutateInput(t *testing.T) {
	members := []Member{{ID: "1", Name: " Бат ", Province: " Төв "}}
	AggregateByProvince(members, gazetteer.Default())
	require.Equal(t, " Төв ", members[0].Province)
	require.Equal(t, " Бат ", members[0].Name)
}

func TestRadius(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, EmptyRadius},
		{1, 15},
		{3, 15},
		{4, 16},
		{10, 40},
		{12, 48},
		{13, 50},
		{500, 50},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Radius(tt.count), "count=%d", tt.count)
	}
}

func TestSummary(t *testing.T) {
	gz, err := gazetteer.New([]gazetteer.Entry{{Name: "X"}})
	require.NoError(t, err)

	members := []Member{
		{Name: "Anu", Province: "X"},
		{Name: "Bold ", Province: "X"},
		{Name: "Chimge", Province: "X"},
		{Name: "Dulmaa", Province: "X"},
		{Name: "Enkh", Province: "X"},
	}
	b := AggregateByProvince(members, gz)[0]
	require.Equal(t, "Anu, Bold, Chimge", b.Summary)
	require.Equal(t, 2, b.MoreCount)
	require.Equal(t, ActiveColor, b.Color)
	require.Equal(t, 20, b.Radius)

	one := AggregateByProvince(members[:1], gz)[0]
	require.Equal(t, "Anu", one.Summary)
	require.Zero(t, one.MoreCount)
}
