// Package catalogtest provides a small in-memory catalog for tests.
package catalogtest

import "restaurant-bot/internal/catalog"

// Price returns a pointer to p.
func Price(p float64) *float64 {
	return &p
}

// Menu is the primary source of the fixture catalog.
func Menu() []catalog.Record {
	return []catalog.Record{
		{Name: "Honey Butter Fried Chicken", Price: Price(18), Tags: []string{"chef", "signature"}, Popularity: 10},
		{Name: "Latte Macchiato", Price: Price(9), Tags: []string{"drink", "coffee"}, Popularity: 9},
		{Name: "Tom Yum Soup", Price: Price(12.5), Tags: []string{"soup; spicy"}, Popularity: 8},
		{Name: "Chocolate Milkshake", Price: Price(11), Tags: []string{"milkshake", "drink"}, Popularity: 7},
		{Name: "Crème Brûlée", Price: Price(13), Tags: []string{"dessert", "sweet"}, Popularity: 6},
		{Name: "Americano", Tags: []string{"drink", "coffee"}, Popularity: 5},
		{Name: "Spicy Sambal Prawns", Price: Price(22), Tags: []string{"spicy", "chef"}, Popularity: 4},
		{Name: "Strawberry Shake", Price: Price(10.9), Popularity: 4},
		{Name: "Simple Coffee", Price: Price(6), Tags: []string{"drink"}, Popularity: 3},
		{Name: "Vegan Curry Puff", Tags: []string{"Vegan", "pastry"}, Popularity: 2},
		{Name: "Garden Salad", Price: Price(14), Tags: []string{"vegetarian,vegan"}, Popularity: 1},
		{Name: "  "},
	}
}

// Supplementary is merged after Menu.
func Supplementary() []catalog.Record {
	return []catalog.Record{
		{Name: "latte macchiato", Price: Price(99), Tags: []string{"drink"}},
		{Name: "Iced Lemon Tea", Price: Price(5.5), Tags: []string{"drink", "tea"}},
	}
}

// PriceRows are auxiliary tabular price rows.
func PriceRows() [][]string {
	return [][]string{
		{"Item", "Price"},
		{"Americano", "RM7.50"},
		{"Vegan Curry Puff", "4.2"},
		{"Mango Sticky Rice Special", "15"},
		{"", " ", ""},
	}
}

// Index builds the fixture catalog with the default lexicon.
func Index() *catalog.Index {
	return catalog.Build(catalog.BuildInput{
		Sources:   [][]catalog.Record{Menu(), Supplementary()},
		PriceRows: PriceRows(),
		Lexicon:   catalog.DefaultLexicon(),
	})
}
