package catalog

import "mealgrid/internal/domain"

const restaurantImage = "/images/meal-preview.png"

func promo(s string) *string { return &s }

// Restaurants returns the fixed home-listing directory in display order.
func Restaurants() []domain.Restaurant {
	rs := []domain.Restaurant{
		{ID: 1, Name: "Golden Dragon", Cuisine: "Chinese", Rating: 4.8, DeliveryMinutes: 25, DeliveryFee: 2.99,
			Promotion: promo("20% OFF"), PriceTier: domain.TierB, Dietary: []domain.Dietary{domain.Vegetarian, domain.GlutenFree}},
		{ID: 2, Name: "Sakura Sushi", Cuisine: "Japanese", Rating: 4.6, DeliveryMinutes: 30, DeliveryFee: 3.99,
			Promotion: promo("Free Delivery"), PriceTier: domain.TierC, Dietary: []domain.Dietary{domain.Vegan}},
		{ID: 3, Name: "Seoul Kitchen", Cuisine: "Korean", Rating: 4.7, DeliveryMinutes: 35, DeliveryFee: 2.49,
			PriceTier: domain.TierB, Dietary: []domain.Dietary{domain.GlutenFree}},
		{ID: 4, Name: "Spicy House", Cuisine: "Sichuan", Rating: 4.5, DeliveryMinutes: 40, DeliveryFee: 1.99,
			PriceTier: domain.TierA, Dietary: []domain.Dietary{domain.Vegetarian, domain.Vegan}},
		{ID: 5, Name: "Pasta Paradise", Cuisine: "Italian", Rating: 4.7, DeliveryMinutes: 30, DeliveryFee: 3.49,
			Promotion: promo("New Restaurant"), PriceTier: domain.TierC, Dietary: []domain.Dietary{domain.Vegetarian}},
		{ID: 6, Name: "Taco Fiesta", Cuisine: "Mexican", Rating: 4.4, DeliveryMinutes: 25, DeliveryFee: 2.99,
			PriceTier: domain.TierB, Dietary: []domain.Dietary{domain.GlutenFree, domain.DairyFree}},
		{ID: 7, Name: "Curry House", Cuisine: "Indian", Rating: 4.6, DeliveryMinutes: 35, DeliveryFee: 2.99,
			Promotion: promo("10% OFF"), PriceTier: domain.TierB, Dietary: []domain.Dietary{domain.Vegetarian, domain.Vegan}},
		{ID: 8, Name: "Burger Joint", Cuisine: "American", Rating: 4.3, DeliveryMinutes: 20, DeliveryFee: 1.99,
			PriceTier: domain.TierA, Dietary: []domain.Dietary{domain.GlutenFree}},
	}
	for i := range rs {
		rs[i].Image = restaurantImage
	}
	return rs
}
