package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mealgrid/internal/catalog"
	"mealgrid/internal/domain"
	"mealgrid/internal/search"
)

type QueryService struct {
	snap        *catalog.Snapshot
	restaurants []domain.Restaurant
	cache       domain.Cache
	cacheTTL    time.Duration
}

// NewQueryService serves reads from snap. A nil cache disables caching.
func NewQueryService(snap *catalog.Snapshot, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{snap: snap, restaurants: catalog.Restaurants(), cache: c, cacheTTL: ttl}
}

func (s *QueryService) Generation() string { return s.snap.Generation }

func (s *QueryService) Search(ctx context.Context, q domain.SearchQuery) (domain.SearchPage, error) {
	if q.Empty() {
		return domain.SearchPage{Generation: s.snap.Generation, Meals: []domain.MealView{}}, nil
	}

	key := searchKey(s.snap.Generation, q)
	var page domain.SearchPage
	if s.cacheGet(ctx, key, &page) {
		return echo(page, q), nil
	}

	res := search.Filter(s.snap.Meals, s.snap.Pinned, q.Term, q.Filters)
	page = domain.SearchPage{
		Active:     res.Active,
		Count:      len(res.Meals),
		Generation: s.snap.Generation,
		Meals:      mealViews(res.Meals, s.snap.Pinned.ID),
	}

	// optional size guard
	if b, _ := json.Marshal(page); len(b) < 1_000_000 {
		s.cacheSet(ctx, key, page)
	}
	return echo(page, q), nil
}

func (s *QueryService) GetMeal(ctx context.Context, id int64) (domain.MealView, error) {
	m, ok := s.snap.Meal(id)
	if !ok {
		return domain.MealView{}, fmt.Errorf("meal %d: %w", id, domain.ErrNotFound)
	}
	return mealView(m, s.snap.Pinned.ID), nil
}

func (s *QueryService) ListRestaurants(ctx context.Context) []domain.RestaurantView {
	out := make([]domain.RestaurantView, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, restaurantView(r, nil))
	}
	return out
}

func (s *QueryService) GetRestaurant(ctx context.Context, id int64) (domain.RestaurantView, error) {
	key := fmt.Sprintf("restaurant:%s:%d", s.snap.Generation, id)
	var rv domain.RestaurantView
	if s.cacheGet(ctx, key, &rv) {
		return rv, nil
	}

	i := slices.IndexFunc(s.restaurants, func(r domain.Restaurant) bool { return r.ID == id })
	if i < 0 {
		return domain.RestaurantView{}, fmt.Errorf("restaurant %d: %w", id, domain.ErrNotFound)
	}
	r := s.restaurants[i]
	rv = restaurantView(r, mealViews(menuFor(r.Name, s.snap.Candidates()), s.snap.Pinned.ID))
	s.cacheSet(ctx, key, rv)
	return rv, nil
}

func (s *QueryService) Facets() domain.Facets {
	return domain.Facets{
		Cuisine:   domain.CuisineGroups,
		MealTime:  domain.MealTimeGroups,
		FoodStyle: domain.FoodStyleGroups,
		Price:     domain.PriceTierGroups,
		Dietary:   domain.DietaryGroups,
	}
}

func (s *QueryService) Quote(ctx context.Context, lines []domain.CartLine) (domain.Quote, error) {
	return QuoteCart(lines, s.snap.Meal)
}

// menuFor keeps the first record of each dish served by restaurant,
// popular dishes first.
func menuFor(restaurant string, candidates []domain.Meal) []domain.Meal {
	seen := map[string]bool{}
	var out []domain.Meal
	for _, m := range candidates {
		if m.Restaurant != restaurant || seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		out = append(out, m)
	}
	slices.SortStableFunc(out, func(a, b domain.Meal) int {
		switch {
		case a.Popular == b.Popular:
			return 0
		case a.Popular:
			return -1
		default:
			return 1
		}
	})
	return out
}

// searchKey is insensitive to term case and filter order, neither of which
// changes the result set.
func searchKey(generation string, q domain.SearchQuery) string {
	fs := make([]string, 0, len(q.Filters))
	for _, f := range q.Filters {
		fs = append(fs, f.String())
	}
	slices.Sort(fs)
	sum := sha1.Sum([]byte(strings.ToLower(q.Term) + "\x00" + strings.Join(fs, "\x00")))
	return fmt.Sprintf("search:%s:%s", generation, hex.EncodeToString(sum[:]))
}

func echo(page domain.SearchPage, q domain.SearchQuery) domain.SearchPage {
	page.Term = q.Term
	page.Filters = filterLabels(q.Filters)
	return page
}

func (s *QueryService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	return ok
}

func (s *QueryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
