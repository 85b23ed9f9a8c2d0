package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mealgrid/internal/adapters/observability"
	"mealgrid/internal/app"
	"mealgrid/internal/domain"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type quoteRequest struct {
	Lines []domain.CartLine `json:"lines"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/meals/search", h.searchMeals)
	s.mux.Get("/v1/meals/{id}", h.getMeal)
	s.mux.Get("/v1/restaurants", h.listRestaurants)
	s.mux.Get("/v1/restaurants/{id}", h.getRestaurant)
	s.mux.Get("/v1/facets", h.facets)
	s.mux.Post("/v1/cart/quote", h.quote)
}

// ParseSearchParams reads q plus any number of filter values, given either
// as repeated filter= parameters or as a comma-separated filters= list.
func ParseSearchParams(v url.Values) domain.SearchQuery {
	q := domain.SearchQuery{Term: strings.TrimSpace(v.Get("q"))}
	raw := append([]string(nil), v["filter"]...)
	for _, csv := range v["filters"] {
		raw = append(raw, strings.Split(csv, ",")...)
	}
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			q.Filters = append(q.Filters, domain.ParseFilterValue(r))
		}
	}
	return q
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", what+" not found")
	case errors.Is(err, domain.ErrInvalidQuantity):
		writeProblem(w, http.StatusBadRequest, "Invalid quantity", err.Error())
	default:
		log.Error().Err(err).Str("what", what).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached writes v as JSON with a weak ETag, answering 304 when the
// client already holds this version.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("route", routeOf(r)).Msg("failed to write body")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return 0, false
	}
	return id, true
}

func (h *Handlers) searchMeals(w http.ResponseWriter, r *http.Request) {
	q := ParseSearchParams(r.URL.Query())
	page, err := h.Q.Search(r.Context(), q)
	if err != nil {
		writeError(w, err, "search")
		return
	}
	observability.ObserveSearch(page.Active, page.Count)
	writeCached(w, r, page)
}

func (h *Handlers) getMeal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, err := h.Q.GetMeal(r.Context(), id)
	if err != nil {
		writeError(w, err, "meal")
		return
	}
	writeCached(w, r, m)
}

func (h *Handlers) listRestaurants(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.ListRestaurants(r.Context()))
}

func (h *Handlers) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rv, err := h.Q.GetRestaurant(r.Context(), id)
	if err != nil {
		writeError(w, err, "restaurant")
		return
	}
	writeCached(w, r, rv)
}

func (h *Handlers) facets(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.Facets())
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected {\"lines\":[{\"meal_id\":n,\"quantity\":n}]}")
		return
	}
	q, err := h.Q.Quote(r.Context(), req.Lines)
	if err != nil {
		writeError(w, err, "meal")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(q); err != nil {
		log.Error().Err(err).Msg("failed to write quote body")
	}
}
