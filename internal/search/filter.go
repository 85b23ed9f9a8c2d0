// Package search is the filter engine over a generated catalog, plus the
// browse session that decides when a query is active.
package search

import (
	"strings"

	"mealgrid/internal/domain"
)

// Result is the outcome of one Filter call. Active is false when the query
// carries no constraint; callers show the restaurant listing instead of an
// unfiltered meal grid in that case.
type Result struct {
	Active bool
	Meals  []domain.Meal
}

// Filter returns the candidates (catalog followed by pinned) that contain
// term in their name, restaurant or cuisine and satisfy every filter.
// Order is preserved and no limit applies.
func Filter(catalog []domain.Meal, pinned domain.Meal, term string, filters []domain.FilterValue) Result {
	if term == "" && len(filters) == 0 {
		return Result{}
	}
	needle := strings.ToLower(term)
	out := []domain.Meal{}
	keep := func(m domain.Meal) {
		if matchesTerm(m, needle) && matchesAll(m, filters) {
			out = append(out, m)
		}
	}
	for _, m := range catalog {
		keep(m)
	}
	keep(pinned)
	return Result{Active: true, Meals: out}
}

// FilterState runs Filter with the term and filters held by st.
func FilterState(catalog []domain.Meal, pinned domain.Meal, st State) Result {
	return Filter(catalog, pinned, st.Term, st.Filters)
}

// FilterStrings parses raw filter values before filtering. Values that
// resolve to no facet are kept and match nothing.
func FilterStrings(catalog []domain.Meal, pinned domain.Meal, term string, raw []string) Result {
	fs := make([]domain.FilterValue, 0, len(raw))
	for _, r := range raw {
		fs = append(fs, domain.ParseFilterValue(r))
	}
	return Filter(catalog, pinned, term, fs)
}

func matchesTerm(m domain.Meal, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), needle) ||
		strings.Contains(strings.ToLower(m.Restaurant), needle) ||
		strings.Contains(strings.ToLower(string(m.Cuisine)), needle)
}

func matchesAll(m domain.Meal, filters []domain.FilterValue) bool {
	for _, f := range filters {
		if !f.Matches(m) {
			return false
		}
	}
	return true
}
