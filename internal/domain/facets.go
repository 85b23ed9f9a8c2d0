package domain

import "strings"

// Facet names a filter category.
type Facet string

const (
	FacetUnknown   Facet = ""
	FacetCuisine   Facet = "cuisine"
	FacetMealTime  Facet = "mealtime"
	FacetFoodStyle Facet = "foodstyle"
	FacetPriceTier Facet = "tier"
	FacetDietary   Facet = "dietary"
)

// FacetGroup is one labelled column of values in the filter menu.
type FacetGroup struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Vocabularies, grouped the way the filter menu presents them.
var (
	CuisineGroups = []FacetGroup{
		{Name: "asian", Values: []string{"Chinese", "Japanese", "Korean", "Thai", "Vietnamese"}},
		{Name: "western", Values: []string{"Italian", "Mexican", "American", "French"}},
		{Name: "other", Values: []string{"Greek", "Spanish", "Turkish", "Lebanese", "Ethiopian", "Indian"}},
	}
	MealTimeGroups = []FacetGroup{
		{Name: "main", Values: []string{"Breakfast", "Lunch", "Dinner"}},
		{Name: "other", Values: []string{"Dessert", "Snacks", "Brunch"}},
	}
	FoodStyleGroups = []FacetGroup{
		{Name: "staples", Values: []string{"Noodles", "Rice", "Pasta", "Bread"}},
		{Name: "styles", Values: []string{"Soup", "BBQ", "Seafood", "Salad", "Sandwich", "Pizza", "Curry", "Stir Fry"}},
	}
	DietaryGroups = []FacetGroup{
		{Name: "common", Values: []string{"Vegetarian", "Vegan", "Gluten-Free"}},
		{Name: "allergies", Values: []string{"Dairy-Free", "Nut-Free"}},
		{Name: "religious", Values: []string{"Halal", "Kosher"}},
	}
	PriceTierGroups = []FacetGroup{
		{Name: "price", Values: []string{TierA.Label(), TierB.Label(), TierC.Label(), TierD.Label()}},
	}
)

// FilterValue is a facet-qualified filter. A value only ever matches through
// the field of its own facet, so "Dessert" as a meal time never collides
// with the Dessert marker style.
type FilterValue struct {
	Facet Facet  `json:"facet"`
	Value string `json:"value"`
}

func CuisineFilter(c Cuisine) FilterValue     { return FilterValue{FacetCuisine, string(c)} }
func MealTimeFilter(t MealTime) FilterValue   { return FilterValue{FacetMealTime, string(t)} }
func FoodStyleFilter(s FoodStyle) FilterValue { return FilterValue{FacetFoodStyle, string(s)} }
func TierFilter(t PriceTier) FilterValue      { return FilterValue{FacetPriceTier, string(t)} }
func DietaryFilter(d Dietary) FilterValue     { return FilterValue{FacetDietary, string(d)} }

// Matches reports whether m satisfies the filter. Unknown facets never match.
func (f FilterValue) Matches(m Meal) bool {
	switch f.Facet {
	case FacetCuisine:
		return string(m.Cuisine) == f.Value
	case FacetMealTime:
		return m.HasMealTime(MealTime(f.Value))
	case FacetFoodStyle:
		return m.HasFoodStyle(FoodStyle(f.Value))
	case FacetPriceTier:
		return string(m.PriceTier) == f.Value
	case FacetDietary:
		return m.HasDietary(Dietary(f.Value))
	}
	return false
}

// String renders the facet-qualified form accepted by ParseFilterValue.
func (f FilterValue) String() string {
	if f.Facet == FacetUnknown {
		return f.Value
	}
	return string(f.Facet) + ":" + f.Value
}

// Label is the human form of the value (tier letters become their label).
func (f FilterValue) Label() string {
	if f.Facet == FacetPriceTier {
		return PriceTier(f.Value).Label()
	}
	return f.Value
}

// ParseFilterValue resolves a raw filter string. The explicit "facet:value"
// form wins; a bare value is looked up in the cuisine, meal-time,
// food-style, price and dietary vocabularies in that order. Anything else
// yields an unknown value, which never matches.
func ParseFilterValue(raw string) FilterValue {
	s := strings.TrimSpace(raw)
	if facet, val, ok := strings.Cut(s, ":"); ok {
		if fv, ok := parseQualified(Facet(strings.ToLower(strings.TrimSpace(facet))), strings.TrimSpace(val)); ok {
			return fv
		}
	}
	switch {
	case inGroups(CuisineGroups, s):
		return FilterValue{FacetCuisine, s}
	case inGroups(MealTimeGroups, s):
		return FilterValue{FacetMealTime, s}
	case inGroups(FoodStyleGroups, s):
		return FilterValue{FacetFoodStyle, s}
	}
	if t, ok := ParseTier(s); ok {
		return TierFilter(t)
	}
	if inGroups(DietaryGroups, s) {
		return FilterValue{FacetDietary, s}
	}
	return FilterValue{FacetUnknown, s}
}

func parseQualified(facet Facet, val string) (FilterValue, bool) {
	switch facet {
	case FacetCuisine, FacetMealTime, FacetFoodStyle, FacetDietary:
		// qualified values are taken verbatim so marker styles stay addressable
		return FilterValue{facet, val}, val != ""
	case FacetPriceTier, "price":
		if t, ok := ParseTier(val); ok {
			return TierFilter(t), true
		}
	}
	return FilterValue{}, false
}

func inGroups(groups []FacetGroup, v string) bool {
	for _, g := range groups {
		for _, x := range g.Values {
			if x == v {
				return true
			}
		}
	}
	return false
}
