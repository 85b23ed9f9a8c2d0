package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealgrid/internal/domain"
	"mealgrid/internal/shared"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(shared.Config{CatalogSize: 300, APIBaseURL: "http://127.0.0.1:1"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearch_LocalBrowsingShowsRestaurants(t *testing.T) {
	out, err := run(t, "search", "--local")
	require.NoError(t, err)
	assert.Contains(t, out, "No search or filter active")
	assert.Contains(t, out, "Golden Dragon")
	assert.Contains(t, out, "Burger Joint")
}

func TestSearch_LocalTermAndFilters(t *testing.T) {
	out, err := run(t, "search", "--local", "--seed", "9", "dragon", "-f", "Noodles")
	require.NoError(t, err)
	assert.Contains(t, out, "Beef Chow Mein")
	assert.Contains(t, out, "Shanghai Beef Noodle Soup")
	assert.NotContains(t, out, "Kung Pao Chicken")
}

func TestSearch_LocalUnknownFilter(t *testing.T) {
	out, err := run(t, "search", "--local", "-f", "Martian")
	require.NoError(t, err)
	assert.Contains(t, out, "0 meals")
}

func TestRestaurantMenuAndMeal(t *testing.T) {
	out, err := run(t, "restaurants", "--local", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Pasta Paradise")
	assert.Contains(t, out, "Tiramisu")

	out, err = run(t, "meal", "--local", "999")
	require.NoError(t, err)
	assert.Contains(t, out, "Shanghai Beef Noodle Soup (#999)")
	assert.Contains(t, out, "$10-$20")
}

func TestFacets_Local(t *testing.T) {
	out, err := run(t, "facets", "--local")
	require.NoError(t, err)
	assert.Contains(t, out, "Stir Fry")
	assert.Contains(t, out, "Over $30")
}

func TestQuote_Local(t *testing.T) {
	out, err := run(t, "quote", "--local", "1000:2", "1001")
	require.NoError(t, err)
	assert.Contains(t, out, "2x Kung Pao Chicken")
	assert.Contains(t, out, "$43.95")

	_, err = run(t, "quote", "--local", "1000:0")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = run(t, "quote", "--local", "abc")
	assert.Error(t, err)
}

func TestSearch_RemoteAPI(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/meals/search", r.URL.Path)
		assert.Equal(t, []string{"Vegan"}, r.URL.Query()["filter"])
		_ = json.NewEncoder(w).Encode(domain.SearchPage{Active: true, Count: 1, Meals: []domain.MealView{
			{Meal: domain.Meal{ID: 1009, Name: "Vegetable Tempura", Restaurant: "Sakura Sushi", Price: 9.99, PriceTier: domain.TierA}},
		}})
	}))
	defer ts.Close()

	out, err := run(t, "search", "--api", ts.URL, "-f", "Vegan")
	require.NoError(t, err)
	assert.Contains(t, out, "Vegetable Tempura")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "1 meals"))
}

func TestParseCartLines(t *testing.T) {
	lines, err := parseCartLines([]string{"1000:3", "999"})
	require.NoError(t, err)
	assert.Equal(t, []domain.CartLine{{MealID: 1000, Quantity: 3}, {MealID: 999, Quantity: 1}}, lines)

	_, err = parseCartLines([]string{"1000:x"})
	assert.Error(t, err)
}
