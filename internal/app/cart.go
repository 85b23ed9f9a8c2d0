package app

import (
	"fmt"
	"math"

	"mealgrid/internal/domain"
)

const (
	DeliveryFee = 2.99
	ServiceFee  = 1.99
)

// QuoteCart prices lines against lookup. Fees apply only to a non-empty cart.
func QuoteCart(lines []domain.CartLine, lookup func(id int64) (domain.Meal, bool)) (domain.Quote, error) {
	q := domain.Quote{Lines: make([]domain.QuoteLine, 0, len(lines))}
	if len(lines) == 0 {
		return q, nil
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return domain.Quote{}, fmt.Errorf("meal %d: %w", l.MealID, domain.ErrInvalidQuantity)
		}
		m, ok := lookup(l.MealID)
		if !ok {
			return domain.Quote{}, fmt.Errorf("meal %d: %w", l.MealID, domain.ErrNotFound)
		}
		lt := cents(m.Price * float64(l.Quantity))
		q.Lines = append(q.Lines, domain.QuoteLine{
			MealID:    m.ID,
			Name:      m.Name,
			Quantity:  l.Quantity,
			UnitPrice: m.Price,
			LineTotal: lt,
		})
		q.Subtotal += lt
	}
	q.Subtotal = cents(q.Subtotal)
	q.DeliveryFee = DeliveryFee
	q.ServiceFee = ServiceFee
	q.Total = cents(q.Subtotal + q.DeliveryFee + q.ServiceFee)
	return q, nil
}

func cents(v float64) float64 { return math.Round(v*100) / 100 }
