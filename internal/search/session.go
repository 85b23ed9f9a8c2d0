package search

import (
	"slices"

	"mealgrid/internal/domain"
)

type Mode int

const (
	Browsing Mode = iota
	Searching
)

func (m Mode) String() string {
	if m == Searching {
		return "searching"
	}
	return "browsing"
}

// State is the caller's current query.
type State struct {
	Term    string
	Filters []domain.FilterValue
}

func (s State) Empty() bool { return s.Term == "" && len(s.Filters) == 0 }

// Query converts the state into the service-level query.
func (s State) Query() domain.SearchQuery {
	return domain.SearchQuery{Term: s.Term, Filters: slices.Clone(s.Filters)}
}

// Session tracks one shopper's query and whether the meal grid is shown.
// It is not safe for concurrent use.
type Session struct {
	st   State
	mode Mode
}

func NewSession() *Session { return &Session{} }

func (s *Session) Mode() Mode { return s.mode }

// State returns a copy of the current query.
func (s *Session) State() State {
	return State{Term: s.st.Term, Filters: slices.Clone(s.st.Filters)}
}

func (s *Session) SetSearch(term string) {
	s.st.Term = term
	if term != "" {
		s.mode = Searching
	} else if len(s.st.Filters) == 0 {
		s.mode = Browsing
	}
}

// Apply adds v unless it is already active.
func (s *Session) Apply(v domain.FilterValue) {
	if !slices.Contains(s.st.Filters, v) {
		s.st.Filters = append(s.st.Filters, v)
	}
	s.mode = Searching
}

func (s *Session) Remove(v domain.FilterValue) {
	s.st.Filters = slices.DeleteFunc(s.st.Filters, func(f domain.FilterValue) bool { return f == v })
	if len(s.st.Filters) == 0 && s.st.Term == "" {
		s.mode = Browsing
	}
}

func (s *Session) ClearFilters() {
	s.st.Filters = nil
	if s.st.Term == "" {
		s.mode = Browsing
	}
}

// Run filters the candidates with the session's current state.
func (s *Session) Run(catalog []domain.Meal, pinned domain.Meal) Result {
	return FilterState(catalog, pinned, s.st)
}
