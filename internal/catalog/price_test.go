package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-bot/internal/catalog"
	"restaurant-bot/internal/catalog/catalogtest"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "RM12.5"},
		{12.50, "RM12.5"},
		{8, "RM8"},
		{10.9, "RM10.9"},
		{7.499, "RM7.5"},
		{10, "RM10"},
		{0, "RM0"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.FormatPrice(tc.in))
		})
	}
}

func TestParsePriceRow(t *testing.T) {
	tests := []struct {
		name      string
		cells     []string
		wantName  string
		wantPrice float64
		wantOK    bool
	}{
		{"name then price", []string{"Americano", "RM7.50"}, "Americano", 7.5, true},
		{"price first", []string{"4", "Kaya Toast"}, "Kaya Toast", 4, true},
		{"header skipped", []string{"Item", "Price"}, "", 0, false},
		{"price column name ignored", []string{"price list", "Nasi Lemak", "8"}, "Nasi Lemak", 8, true},
		{"blank row", []string{"", " "}, "", 0, false},
		{"no number", []string{"Nasi Lemak", "n/a"}, "", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, price, ok := catalog.ParsePriceRow(tc.cells)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantPrice, price)
		})
	}
}

func TestIndex_Label(t *testing.T) {
	ix := catalogtest.Index()

	get := func(name string) catalog.Entry {
		e, ok := ix.LookupByName(name)
		require.True(t, ok, name)
		return e
	}

	assert.Equal(t, "Honey Butter Fried Chicken (RM18)", ix.Label(get("Honey Butter Fried Chicken")))
	assert.Equal(t, "Tom Yum Soup (RM12.5)", ix.Label(get("Tom Yum Soup")))
	// Americano has no menu price; the tabular index supplies it.
	assert.Equal(t, "Americano (RM7.5)", ix.Label(get("Americano")))
	assert.Equal(t, "Mystery", ix.Label(catalog.Entry{Name: "Mystery"}))
	assert.Equal(t, "Item", ix.Label(catalog.Entry{}))
}

func TestIndex_ResolvePrice(t *testing.T) {
	ix := catalogtest.Index()

	tests := []struct {
		name  string
		query string
		want  float64
		found bool
	}{
		{"entry price", "latte macchiato", 9, true},
		{"index exact", "vegan curry puff", 4.2, true},
		{"index contains query", "mango sticky rice", 15, true},
		{"query contains index key", "the americano please", 7.5, true},
		{"unknown", "pizza", 0, false},
		{"blank", "  ", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ix.ResolvePrice(tc.query)
			assert.Equal(t, tc.found, ok)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestIndex_FindPriced(t *testing.T) {
	ix := catalogtest.Index()

	e, ok := ix.FindPriced("tom yum")
	require.True(t, ok)
	assert.Equal(t, "Tom Yum Soup", e.Name)

	e, ok = ix.FindPriced("vegan curry puff")
	require.True(t, ok)
	assert.Equal(t, "vegan curry puff", e.Name)
	assert.Equal(t, 4.2, *e.Price)

	e, ok = ix.FindPriced("mango sticky rice")
	require.True(t, ok, "falls back to a containing key of the price index")
	assert.Equal(t, "mango sticky rice", e.Name)
	assert.Equal(t, 15.0, *e.Price)

	_, ok = ix.FindPriced("pizza")
	assert.False(t, ok)
}
