package catalog

import "mealgrid/internal/domain"

type template struct {
	name       string
	restaurant string
	cuisine    domain.Cuisine
	styles     []domain.FoodStyle
	price      float64
}

func styles(s ...domain.FoodStyle) []domain.FoodStyle { return s }

// templates is the fixed base list expanded cyclically by Generate.
var templates = []template{
	// Chinese
	{"Kung Pao Chicken", "Golden Dragon", domain.Chinese, styles(domain.StirFry), 15.99},
	{"Vegetable Spring Rolls", "Golden Dragon", domain.Chinese, styles(domain.BBQ), 6.99},
	{"Beef Chow Mein", "Golden Dragon", domain.Chinese, styles(domain.Noodles, domain.StirFry), 14.99},
	{"Sweet and Sour Pork", "Golden Dragon", domain.Chinese, styles(domain.StirFry), 13.99},
	{"Mapo Tofu", "Spicy House", domain.Chinese, styles(domain.StirFry), 12.99},
	{"Dan Dan Noodles", "Spicy House", domain.Chinese, styles(domain.Noodles, domain.Soup), 10.99},
	{"Peking Duck", "Golden Dragon", domain.Chinese, styles(domain.BBQ), 29.99},
	{"Hot Pot", "Spicy House", domain.Chinese, styles(domain.Soup), 24.99},

	// Japanese
	{"Salmon Sushi Roll", "Sakura Sushi", domain.Japanese, styles(domain.Seafood), 12.99},
	{"Vegetable Tempura", "Sakura Sushi", domain.Japanese, styles(domain.BBQ), 9.99},
	{"Tonkotsu Ramen", "Sakura Sushi", domain.Japanese, styles(domain.Noodles, domain.Soup), 14.99},
	{"Chicken Katsu", "Sakura Sushi", domain.Japanese, styles(domain.BBQ), 16.99},
	{"Beef Teriyaki", "Sakura Sushi", domain.Japanese, styles(domain.BBQ), 18.99},
	{"Miso Soup", "Sakura Sushi", domain.Japanese, styles(domain.Soup), 4.99},
	{"Gyoza", "Sakura Sushi", domain.Japanese, styles(domain.BBQ), 7.99},

	// Korean
	{"Bibimbap", "Seoul Kitchen", domain.Korean, styles(domain.Rice), 14.99},
	{"Kimchi Fried Rice", "Seoul Kitchen", domain.Korean, styles(domain.Rice, domain.StirFry), 11.99},
	{"Bulgogi", "Seoul Kitchen", domain.Korean, styles(domain.BBQ), 17.99},
	{"Japchae", "Seoul Kitchen", domain.Korean, styles(domain.Noodles, domain.StirFry), 13.99},
	{"Tteokbokki", "Seoul Kitchen", domain.Korean, styles(domain.Rice, domain.StirFry), 10.99},
	{"Korean Fried Chicken", "Seoul Kitchen", domain.Korean, styles(domain.BBQ), 15.99},

	// Italian
	{"Margherita Pizza", "Pasta Paradise", domain.Italian, styles(domain.Pizza), 12.99},
	{"Spaghetti Carbonara", "Pasta Paradise", domain.Italian, styles(domain.Pasta), 14.99},
	{"Fettuccine Alfredo", "Pasta Paradise", domain.Italian, styles(domain.Pasta), 15.99},
	{"Lasagna", "Pasta Paradise", domain.Italian, styles(domain.Pasta), 16.99},
	{"Risotto", "Pasta Paradise", domain.Italian, styles(domain.Rice), 18.99},
	{"Tiramisu", "Pasta Paradise", domain.Italian, styles(domain.Dessert), 8.99},

	// Mexican
	{"Beef Tacos", "Taco Fiesta", domain.Mexican, styles(domain.BBQ), 9.99},
	{"Chicken Quesadilla", "Taco Fiesta", domain.Mexican, styles(domain.BBQ), 11.99},
	{"Vegetarian Burrito", "Taco Fiesta", domain.Mexican, styles(domain.BBQ), 10.99},
	{"Nachos Supreme", "Taco Fiesta", domain.Mexican, styles(domain.BBQ), 8.99},
	{"Guacamole & Chips", "Taco Fiesta", domain.Mexican, styles(domain.Snacks), 6.99},

	// Indian
	{"Butter Chicken", "Curry House", domain.Indian, styles(domain.Curry), 16.99},
	{"Vegetable Biryani", "Curry House", domain.Indian, styles(domain.Rice), 14.99},
	{"Palak Paneer", "Curry House", domain.Indian, styles(domain.Curry), 13.99},
	{"Chicken Tikka Masala", "Curry House", domain.Indian, styles(domain.Curry), 17.99},
	{"Garlic Naan", "Curry House", domain.Indian, styles(domain.Bread), 3.99},
	{"Samosas", "Curry House", domain.Indian, styles(domain.Snacks), 5.99},

	// American
	{"Classic Cheeseburger", "Burger Joint", domain.American, styles(domain.BBQ, domain.Sandwich), 8.99},
	{"BBQ Ribs", "Burger Joint", domain.American, styles(domain.BBQ), 19.99},
	{"Buffalo Wings", "Burger Joint", domain.American, styles(domain.BBQ), 12.99},
	{"Caesar Salad", "Burger Joint", domain.American, styles(domain.Salad), 7.99},
	{"Mac & Cheese", "Burger Joint", domain.American, styles(domain.Pasta), 9.99},
	{"Apple Pie", "Burger Joint", domain.American, styles(domain.Dessert), 6.99},
}

// TemplateCount is the length of the cycle that Generate walks.
func TemplateCount() int { return len(templates) }
