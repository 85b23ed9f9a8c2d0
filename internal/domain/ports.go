package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Rand is the pseudorandom source consumed by the catalog generator.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Read models & queries

type SearchQuery struct {
	Term    string
	Filters []FilterValue
}

// Empty reports whether the query carries no constraint at all.
func (q SearchQuery) Empty() bool { return q.Term == "" && len(q.Filters) == 0 }

type MealView struct {
	Meal
	PriceLabel string `json:"price_label"`
	Pinned     bool   `json:"pinned,omitempty"`
}

type SearchPage struct {
	Active     bool       `json:"active"`
	Count      int        `json:"count"`
	Generation string     `json:"generation"`
	Term       string     `json:"term,omitempty"`
	Filters    []string   `json:"filters,omitempty"`
	Meals      []MealView `json:"meals"`
}

type RestaurantView struct {
	Restaurant
	PriceLabel string     `json:"price_label"`
	Menu       []MealView `json:"menu,omitempty"`
}

type Quote struct {
	Lines       []QuoteLine `json:"lines"`
	Subtotal    float64     `json:"subtotal"`
	DeliveryFee float64     `json:"delivery_fee"`
	ServiceFee  float64     `json:"service_fee"`
	Total       float64     `json:"total"`
}

type QuoteLine struct {
	MealID    int64   `json:"meal_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type Facets struct {
	Cuisine   []FacetGroup `json:"cuisine"`
	MealTime  []FacetGroup `json:"meal_time"`
	FoodStyle []FacetGroup `json:"food_style"`
	Price     []FacetGroup `json:"price"`
	Dietary   []FacetGroup `json:"dietary"`
}
