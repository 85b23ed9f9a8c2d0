package domain

import "slices"

type (
	Cuisine   string
	MealTime  string
	FoodStyle string
	Dietary   string
)

const (
	Chinese    Cuisine = "Chinese"
	Japanese   Cuisine = "Japanese"
	Korean     Cuisine = "Korean"
	Thai       Cuisine = "Thai"
	Vietnamese Cuisine = "Vietnamese"
	Italian    Cuisine = "Italian"
	Mexican    Cuisine = "Mexican"
	American   Cuisine = "American"
	French     Cuisine = "French"
	Greek      Cuisine = "Greek"
	Spanish    Cuisine = "Spanish"
	Turkish    Cuisine = "Turkish"
	Lebanese   Cuisine = "Lebanese"
	Ethiopian  Cuisine = "Ethiopian"
	Indian     Cuisine = "Indian"
)

const (
	Breakfast   MealTime = "Breakfast"
	Lunch       MealTime = "Lunch"
	Dinner      MealTime = "Dinner"
	DessertTime MealTime = "Dessert"
	SnacksTime  MealTime = "Snacks"
	Brunch      MealTime = "Brunch"
)

const (
	Noodles  FoodStyle = "Noodles"
	Rice     FoodStyle = "Rice"
	Pasta    FoodStyle = "Pasta"
	Bread    FoodStyle = "Bread"
	Soup     FoodStyle = "Soup"
	BBQ      FoodStyle = "BBQ"
	Seafood  FoodStyle = "Seafood"
	Salad    FoodStyle = "Salad"
	Sandwich FoodStyle = "Sandwich"
	Pizza    FoodStyle = "Pizza"
	Curry    FoodStyle = "Curry"
	StirFry  FoodStyle = "Stir Fry"

	// Marker styles. They drive meal-time assignment and are never offered as facet values.
	Dessert FoodStyle = "Dessert"
	Snacks  FoodStyle = "Snacks"
)

const (
	Vegetarian Dietary = "Vegetarian"
	Vegan      Dietary = "Vegan"
	GlutenFree Dietary = "Gluten-Free"
	DairyFree  Dietary = "Dairy-Free"
	NutFree    Dietary = "Nut-Free"
	Halal      Dietary = "Halal"
	Kosher     Dietary = "Kosher"
)

// Meal is one orderable dish. Values are immutable once generated; PriceTier
// is always TierFor(Price).
type Meal struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Restaurant string      `json:"restaurant"`
	Cuisine    Cuisine     `json:"cuisine"`
	MealTimes  []MealTime  `json:"meal_times"`
	FoodStyles []FoodStyle `json:"food_styles"`
	Rating     float64     `json:"rating"`
	Price      float64     `json:"price"`
	PriceTier  PriceTier   `json:"price_tier"`
	Dietary    []Dietary   `json:"dietary"`
	Image      string      `json:"image"`
	Popular    bool        `json:"popular"`
}

func (m Meal) HasMealTime(t MealTime) bool   { return slices.Contains(m.MealTimes, t) }
func (m Meal) HasFoodStyle(s FoodStyle) bool { return slices.Contains(m.FoodStyles, s) }
func (m Meal) HasDietary(d Dietary) bool     { return slices.Contains(m.Dietary, d) }

// Valid reports whether the record satisfies the catalog invariants.
func (m Meal) Valid() bool {
	return len(m.MealTimes) > 0 && len(m.FoodStyles) > 0 && m.PriceTier == TierFor(m.Price)
}
