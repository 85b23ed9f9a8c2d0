package catalog

import (
	"time"

	"github.com/google/uuid"

	"mealgrid/internal/domain"
)

// Pinned returns the hand-authored record that is always a search candidate.
func Pinned() domain.Meal {
	return domain.Meal{
		ID:         999,
		Name:       "Shanghai Beef Noodle Soup",
		Restaurant: "Golden Dragon",
		Cuisine:    domain.Chinese,
		MealTimes:  []domain.MealTime{domain.Lunch},
		FoodStyles: []domain.FoodStyle{domain.Noodles, domain.Soup},
		Rating:     4.7,
		Price:      14.99,
		PriceTier:  domain.TierFor(14.99),
		Dietary:    []domain.Dietary{domain.DairyFree},
		Image:      "/images/noodle-soup.png",
		Popular:    true,
	}
}

// Snapshot is one generated catalog. It is read-only once built and safe to
// share across goroutines.
type Snapshot struct {
	Generation string
	Meals      []domain.Meal
	Pinned     domain.Meal
	CreatedAt  time.Time
}

func NewSnapshot(count int, rng domain.Rand) *Snapshot {
	return &Snapshot{
		Generation: uuid.NewString(),
		Meals:      Generate(count, rng),
		Pinned:     Pinned(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Candidates returns the generated meals followed by the pinned record.
func (s *Snapshot) Candidates() []domain.Meal {
	out := make([]domain.Meal, 0, len(s.Meals)+1)
	out = append(out, s.Meals...)
	return append(out, s.Pinned)
}

// Meal looks a record up by ID, pinned included.
func (s *Snapshot) Meal(id int64) (domain.Meal, bool) {
	if id == s.Pinned.ID {
		return s.Pinned, true
	}
	i := id - IDOffset
	if i < 0 || i >= int64(len(s.Meals)) {
		return domain.Meal{}, false
	}
	return s.Meals[i], true
}
