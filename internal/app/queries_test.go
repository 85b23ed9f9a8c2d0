package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mealgrid/internal/app"
	"mealgrid/internal/catalog"
	"mealgrid/internal/domain"
)

// ---- fakes ----

type fakeCache struct {
	store map[string]any
	gets  int
	sets  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.gets++
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.SearchPage:
		*d = v.(domain.SearchPage)
	case *domain.RestaurantView:
		*d = v.(domain.RestaurantView)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.sets++
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	return false, errors.New("connection refused")
}
func (brokenCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return errors.New("connection refused")
}
func (brokenCache) Del(ctx context.Context, key string) error { return nil }

func newService(t *testing.T, c domain.Cache) *app.QueryService {
	t.Helper()
	return app.NewQueryService(catalog.NewSnapshot(300, catalog.NewRand(11)), c, 10*time.Minute)
}

// ---- tests ----

func TestSearch_EmptyQueryIsInactive(t *testing.T) {
	cache := &fakeCache{}
	q := newService(t, cache)

	page, err := q.Search(context.Background(), domain.SearchQuery{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page.Active || page.Meals == nil || len(page.Meals) != 0 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if cache.gets != 0 || cache.sets != 0 {
		t.Fatalf("inactive query should bypass the cache")
	}
}

func TestSearch_CacheMissThenHit(t *testing.T) {
	cache := &fakeCache{}
	q := newService(t, cache)
	ctx := context.Background()

	first, err := q.Search(ctx, domain.SearchQuery{Term: "Dragon"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !first.Active || first.Count == 0 || first.Count != len(first.Meals) {
		t.Fatalf("unexpected page: active=%v count=%d meals=%d", first.Active, first.Count, len(first.Meals))
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache set, got %d", cache.sets)
	}

	// different casing hits the same entry but echoes the caller's term
	second, _ := q.Search(ctx, domain.SearchQuery{Term: "dragon"})
	if cache.sets != 1 {
		t.Fatalf("expected cache hit, got %d sets", cache.sets)
	}
	if second.Term != "dragon" || second.Count != first.Count {
		t.Fatalf("unexpected cached page: term=%q count=%d", second.Term, second.Count)
	}
}

func TestSearch_FilterOrderSharesCacheEntry(t *testing.T) {
	cache := &fakeCache{}
	q := newService(t, cache)
	ctx := context.Background()

	a := domain.CuisineFilter(domain.Chinese)
	b := domain.FoodStyleFilter(domain.Noodles)
	_, _ = q.Search(ctx, domain.SearchQuery{Filters: []domain.FilterValue{a, b}})
	page, _ := q.Search(ctx, domain.SearchQuery{Filters: []domain.FilterValue{b, a}})
	if cache.sets != 1 {
		t.Fatalf("expected one entry for both orders, got %d", cache.sets)
	}
	if len(page.Filters) != 2 || page.Filters[0] != "Noodles" {
		t.Fatalf("filters should echo the request order: %v", page.Filters)
	}
}

func TestSearch_PinnedFlaggedInViews(t *testing.T) {
	q := newService(t, nil)
	page, _ := q.Search(context.Background(), domain.SearchQuery{Term: "shanghai"})
	if page.Count != 1 || !page.Meals[0].Pinned || page.Meals[0].PriceLabel != "$10-$20" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestSearch_BrokenCacheFallsThrough(t *testing.T) {
	q := newService(t, brokenCache{})
	page, err := q.Search(context.Background(), domain.SearchQuery{Filters: []domain.FilterValue{domain.TierFilter(domain.TierA)}})
	if err != nil {
		t.Fatalf("cache errors must not fail reads: %v", err)
	}
	for _, m := range page.Meals {
		if m.Price >= 10 {
			t.Fatalf("tier A returned %s at %.2f", m.Name, m.Price)
		}
	}
}

func TestGetMeal(t *testing.T) {
	q := newService(t, nil)
	m, err := q.GetMeal(context.Background(), 1000)
	if err != nil || m.Name != "Kung Pao Chicken" {
		t.Fatalf("unexpected meal: %+v err=%v", m, err)
	}
	if _, err := q.GetMeal(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRestaurant_MenuAndCache(t *testing.T) {
	cache := &fakeCache{}
	q := newService(t, cache)
	ctx := context.Background()

	rv, err := q.GetRestaurant(ctx, 1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rv.Name != "Golden Dragon" || rv.PriceLabel != "$10-$20" {
		t.Fatalf("unexpected restaurant: %+v", rv.Restaurant)
	}
	seen := map[string]bool{}
	var hasPinned bool
	for _, m := range rv.Menu {
		if m.Restaurant != "Golden Dragon" {
			t.Fatalf("foreign dish on menu: %s", m.Name)
		}
		if seen[m.Name] {
			t.Fatalf("duplicate dish on menu: %s", m.Name)
		}
		seen[m.Name] = true
		hasPinned = hasPinned || m.Pinned
	}
	// 5 Golden Dragon templates plus the pinned soup
	if len(rv.Menu) != 6 || !hasPinned {
		t.Fatalf("unexpected menu size %d (pinned=%v)", len(rv.Menu), hasPinned)
	}
	for i := 1; i < len(rv.Menu); i++ {
		if rv.Menu[i].Popular && !rv.Menu[i-1].Popular {
			t.Fatalf("popular dishes must come first")
		}
	}

	_, _ = q.GetRestaurant(ctx, 1)
	if cache.sets != 1 {
		t.Fatalf("expected cached restaurant, got %d sets", cache.sets)
	}

	if _, err := q.GetRestaurant(ctx, 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListRestaurantsAndFacets(t *testing.T) {
	q := newService(t, nil)
	rs := q.ListRestaurants(context.Background())
	if len(rs) != 8 || rs[3].Cuisine != "Sichuan" || rs[0].Promotion == nil {
		t.Fatalf("unexpected directory: %+v", rs)
	}
	f := q.Facets()
	if len(f.Cuisine) != 3 || len(f.Price[0].Values) != 4 {
		t.Fatalf("unexpected facets: %+v", f)
	}
}
