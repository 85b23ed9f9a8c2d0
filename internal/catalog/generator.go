package catalog

import (
	"math/rand/v2"
	"strings"

	"mealgrid/internal/domain"
)

// IDOffset is added to the template cycle index to form a meal ID.
const IDOffset = 1000

var (
	// drawn from when a template carries no dessert/snack marker
	openMealTimes = []domain.MealTime{domain.Breakfast, domain.Lunch, domain.Dinner, domain.Brunch}

	allDietary = []domain.Dietary{
		domain.Vegetarian, domain.Vegan, domain.GlutenFree, domain.DairyFree,
		domain.NutFree, domain.Halal, domain.Kosher,
	}

	vegetarianSignals = []string{"vegetable", "vegetarian", "tofu", "salad"}
)

// NewRand returns a PCG-backed source. Seed 0 means unseeded.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate expands the template list into count meals. Name, restaurant,
// cuisine and price follow the template cycle; meal times, dietary tags,
// rating and popularity are drawn from rng. A nil rng is unseeded.
func Generate(count int, rng domain.Rand) []domain.Meal {
	if count <= 0 {
		return []domain.Meal{}
	}
	if rng == nil {
		rng = NewRand(0)
	}
	out := make([]domain.Meal, 0, count)
	for i := 0; i < count; i++ {
		t := templates[i%len(templates)]
		out = append(out, domain.Meal{
			ID:         IDOffset + int64(i),
			Name:       t.name,
			Restaurant: t.restaurant,
			Cuisine:    t.cuisine,
			MealTimes:  mealTimesFor(t.styles, rng),
			FoodStyles: append([]domain.FoodStyle(nil), t.styles...),
			Rating:     drawRating(rng),
			Price:      t.price,
			PriceTier:  domain.TierFor(t.price),
			Dietary:    dietaryFor(t.name, rng),
			Image:      ImageFor(t.styles),
			Popular:    rng.Float64() < 0.2,
		})
	}
	return out
}

func mealTimesFor(ss []domain.FoodStyle, rng domain.Rand) []domain.MealTime {
	for _, s := range ss {
		if s == domain.Dessert {
			return []domain.MealTime{domain.DessertTime}
		}
	}
	for _, s := range ss {
		if s == domain.Snacks {
			return []domain.MealTime{domain.SnacksTime}
		}
	}
	pool := append([]domain.MealTime(nil), openMealTimes...)
	n := rng.IntN(2) + 1
	out := make([]domain.MealTime, 0, n)
	for j := 0; j < n; j++ {
		k := rng.IntN(len(pool))
		out = append(out, pool[k])
		pool = append(pool[:k], pool[k+1:]...)
	}
	return out
}

func dietaryFor(name string, rng domain.Rand) []domain.Dietary {
	out := []domain.Dietary{}
	low := strings.ToLower(name)
	for _, sig := range vegetarianSignals {
		if strings.Contains(low, sig) {
			out = append(out, domain.Vegetarian)
			if rng.Float64() < 0.5 {
				out = append(out, domain.Vegan)
			}
			break
		}
	}
	if rng.Float64() < 0.3 {
		d := allDietary[rng.IntN(len(allDietary))]
		if !contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}

// drawRating yields 3.8, 3.9, ... 4.8.
func drawRating(rng domain.Rand) float64 {
	return float64(38+rng.IntN(11)) / 10
}

func contains(ds []domain.Dietary, d domain.Dietary) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}
