package catalog

import "mealgrid/internal/domain"

const DefaultImage = "/images/fast-food.png"

type imageRule struct {
	any   []domain.FoodStyle
	image string
}

// Order matters: the first rule with any matching style wins.
var imageRules = []imageRule{
	{[]domain.FoodStyle{domain.BBQ, domain.Sandwich}, "/images/burger.png"},
	{[]domain.FoodStyle{domain.Noodles, domain.Soup, domain.Pasta}, "/images/noodle-soup.png"},
	{[]domain.FoodStyle{domain.Rice}, "/images/rice.png"},
	{[]domain.FoodStyle{domain.Bread}, "/images/bread.png"},
	{[]domain.FoodStyle{domain.Seafood}, "/images/seafood.png"},
	{[]domain.FoodStyle{domain.Salad}, "/images/salad.png"},
	{[]domain.FoodStyle{domain.Pizza}, "/images/pizza.png"},
	{[]domain.FoodStyle{domain.Curry, domain.StirFry}, "/images/curry.png"},
}

// ImageFor maps a meal's food styles to its representative image.
func ImageFor(ss []domain.FoodStyle) string {
	for _, r := range imageRules {
		for _, want := range r.any {
			for _, s := range ss {
				if s == want {
					return r.image
				}
			}
		}
	}
	return DefaultImage
}
