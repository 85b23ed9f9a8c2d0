package app

import "mealgrid/internal/domain"

func mealView(m domain.Meal, pinnedID int64) domain.MealView {
	return domain.MealView{Meal: m, PriceLabel: m.PriceTier.Label(), Pinned: m.ID == pinnedID}
}

// mealViews never returns nil so an empty result encodes as [].
func mealViews(ms []domain.Meal, pinnedID int64) []domain.MealView {
	out := make([]domain.MealView, 0, len(ms))
	for _, m := range ms {
		out = append(out, mealView(m, pinnedID))
	}
	return out
}

func restaurantView(r domain.Restaurant, menu []domain.MealView) domain.RestaurantView {
	return domain.RestaurantView{Restaurant: r, PriceLabel: r.PriceTier.Label(), Menu: menu}
}

func filterLabels(fs []domain.FilterValue) []string {
	if len(fs) == 0 {
		return nil
	}
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Label())
	}
	return out
}
