package domain

// PriceTier is a coarse price bucket derived from a meal's price.
type PriceTier string

const (
	TierA PriceTier = "A"
	TierB PriceTier = "B"
	TierC PriceTier = "C"
	TierD PriceTier = "D"
)

var Tiers = []PriceTier{TierA, TierB, TierC, TierD}

// TierFor applies the fixed breakpoints 10, 20 and 30.
func TierFor(price float64) PriceTier {
	switch {
	case price < 10:
		return TierA
	case price < 20:
		return TierB
	case price < 30:
		return TierC
	default:
		return TierD
	}
}

// Label is the facet label shown to shoppers.
func (t PriceTier) Label() string {
	switch t {
	case TierA:
		return "Under $10"
	case TierB:
		return "$10-$20"
	case TierC:
		return "$20-$30"
	case TierD:
		return "Over $30"
	}
	return ""
}

// Symbol is the compact dollar-sign form ("$" .. "$$$$").
func (t PriceTier) Symbol() string {
	switch t {
	case TierA:
		return "$"
	case TierB:
		return "$$"
	case TierC:
		return "$$$"
	case TierD:
		return "$$$$"
	}
	return ""
}

// ParseTier accepts a tier letter, its label or its symbol.
func ParseTier(s string) (PriceTier, bool) {
	for _, t := range Tiers {
		if s == string(t) || s == t.Label() || s == t.Symbol() {
			return t, true
		}
	}
	return "", false
}
