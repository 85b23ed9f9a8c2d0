package domain

// Restaurant is an establishment shown on the home listing.
type Restaurant struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Cuisine         string    `json:"cuisine"` // free text, e.g. "Sichuan"
	Rating          float64   `json:"rating"`
	DeliveryMinutes int       `json:"delivery_minutes"`
	DeliveryFee     float64   `json:"delivery_fee"`
	Promotion       *string   `json:"promotion,omitempty"`
	PriceTier       PriceTier `json:"price_tier"`
	Dietary         []Dietary `json:"dietary"`
	Image           string    `json:"image"`
}

type CartLine struct {
	MealID   int64 `json:"meal_id"`
	Quantity int   `json:"quantity"`
}
