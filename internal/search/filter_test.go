package search_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealgrid/internal/catalog"
	"mealgrid/internal/domain"
	"mealgrid/internal/search"
)

func ids(ms []domain.Meal) []int64 {
	out := make([]int64, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func fixture(t *testing.T) ([]domain.Meal, domain.Meal) {
	t.Helper()
	return catalog.Generate(300, nil), catalog.Pinned()
}

func TestFilter_NoConstraintsIsInactive(t *testing.T) {
	meals, pinned := fixture(t)
	res := search.Filter(meals, pinned, "", nil)
	assert.False(t, res.Active)
	assert.Nil(t, res.Meals)

	res = search.Filter(meals, pinned, "", []domain.FilterValue{})
	assert.False(t, res.Active)
}

func TestFilter_MatchEverythingIsStillActive(t *testing.T) {
	meals, pinned := fixture(t)
	var chinese []domain.Meal
	for _, m := range meals {
		if m.Cuisine == domain.Chinese {
			chinese = append(chinese, m)
		}
	}
	res := search.Filter(chinese, pinned, "", []domain.FilterValue{domain.CuisineFilter(domain.Chinese)})
	require.True(t, res.Active)
	assert.Len(t, res.Meals, len(chinese)+1)

	res = search.Filter(nil, pinned, "shanghai", nil)
	require.True(t, res.Active)
	assert.Equal(t, []int64{999}, ids(res.Meals))
}

func TestFilter_SearchTermDragon(t *testing.T) {
	meals, pinned := fixture(t)
	res := search.Filter(meals, pinned, "dragon", nil)
	require.True(t, res.Active)

	var want []int64
	for _, m := range meals {
		if m.Restaurant == "Golden Dragon" {
			want = append(want, m.ID)
		}
	}
	want = append(want, pinned.ID)
	if diff := cmp.Diff(want, ids(res.Meals)); diff != "" {
		t.Fatalf("dragon results (-want +got):\n%s", diff)
	}
}

func TestFilter_SearchTermMatchesCuisineCaseInsensitively(t *testing.T) {
	meals, pinned := fixture(t)
	res := search.Filter(meals, pinned, "KOREAN", nil)
	require.NotEmpty(t, res.Meals)
	for _, m := range res.Meals {
		assert.Equal(t, domain.Korean, m.Cuisine, m.Name)
	}
}

func TestFilter_ConjunctionAcrossFacets(t *testing.T) {
	meals, pinned := fixture(t)
	res := search.FilterStrings(meals, pinned, "", []string{"Chinese", "Noodles"})
	require.True(t, res.Active)
	require.NotEmpty(t, res.Meals)

	names := map[string]bool{}
	for _, m := range res.Meals {
		assert.Equal(t, domain.Chinese, m.Cuisine)
		assert.True(t, m.HasFoodStyle(domain.Noodles), m.Name)
		names[m.Name] = true
	}
	assert.True(t, names["Beef Chow Mein"])
	assert.True(t, names["Shanghai Beef Noodle Soup"])
	assert.False(t, names["Bibimbap"])
}

func TestFilter_UnderTenExcludesPinned(t *testing.T) {
	meals, pinned := fixture(t)
	res := search.FilterStrings(meals, pinned, "", []string{"Under $10"})

	var want []int64
	for _, m := range meals {
		if m.Price < 10 {
			want = append(want, m.ID)
		}
	}
	if diff := cmp.Diff(want, ids(res.Meals)); diff != "" {
		t.Fatalf("under $10 results (-want +got):\n%s", diff)
	}
	assert.NotContains(t, ids(res.Meals), pinned.ID)
}

func TestFilter_PinnedIncludedWhenMatching(t *testing.T) {
	meals, pinned := fixture(t)
	res := search.Filter(meals, pinned, "", []domain.FilterValue{
		domain.TierFilter(domain.TierB),
		domain.DietaryFilter(domain.DairyFree),
		domain.MealTimeFilter(domain.Lunch),
	})
	got := ids(res.Meals)
	require.NotEmpty(t, got)
	assert.Equal(t, pinned.ID, got[len(got)-1], "pinned keeps its appended position")
}

func TestFilter_UnknownValueYieldsNothing(t *testing.T) {
	meals, pinned := fixture(t)
	res := search.FilterStrings(meals, pinned, "", []string{"Chinese", "Martian"})
	assert.True(t, res.Active)
	assert.Empty(t, res.Meals)
}

func TestFilter_TermAndFiltersCombine(t *testing.T) {
	meals, pinned := fixture(t)
	res := search.FilterStrings(meals, pinned, "chicken", []string{"Indian"})
	require.NotEmpty(t, res.Meals)
	for _, m := range res.Meals {
		assert.Equal(t, domain.Indian, m.Cuisine)
		assert.Contains(t, strings.ToLower(m.Name), "chicken")
	}
}

func TestFilter_PreservesCatalogOrder(t *testing.T) {
	meals, pinned := fixture(t)
	got := ids(search.FilterStrings(meals, pinned, "", []string{"$$"}).Meals)
	for i := 1; i < len(got)-1; i++ {
		assert.Less(t, got[i-1], got[i])
	}
}
