package reply

import (
	"strings"

	"restaurant-bot/internal/catalog"
	"restaurant-bot/pkg/textnorm"
)

func (t *Templater) menu(q string) string {
	if textnorm.ContainsAny(q, milkshakeWords...) {
		if ms := t.ix.ListByTag(catalog.CategoryMilkshake, categoryLimit); len(ms) > 0 {
			return "Drinks (milkshakes): " + t.join(ms, ", ")
		}
	}
	if textnorm.ContainsAny(q, drinkWords...) {
		if dr := t.ix.ListByTag(catalog.CategoryDrink, categoryLimit); len(dr) > 0 {
			return "Drinks: " + t.join(dr, ", ")
		}
	}
	if textnorm.ContainsAny(q, dessertWords...) {
		if ds := t.ix.ListByTag(catalog.CategoryDessert, categoryLimit); len(ds) > 0 {
			return "Desserts: " + t.join(ds, ", ")
		}
	}
	if popular := head(catalog.PopularFirst(t.ix.Entries()), popularLimit); len(popular) > 0 {
		return "Popular now: " + t.join(popular, ", ")
	}
	return TextMenuUpdating
}

func (t *Templater) dietary(q string) string {
	list := func(tag, prefix, otherwise string) string {
		if items := t.ix.ListByTag(tag, categoryLimit); len(items) > 0 {
			return prefix + t.join(items, ", ")
		}
		return otherwise
	}

	switch {
	case strings.Contains(q, "vegan"):
		return list("vegan", "Vegan dishes: ", "We can make some dishes vegan on request.")
	case strings.Contains(q, "vegetarian"):
		return list("vegetarian", "Vegetarian options: ", "Yes, we have vegetarian options.")
	case strings.Contains(q, "spicy"):
		return list("spicy", "Spicy picks: ", "We can make dishes spicier on request.")
	case strings.Contains(q, "sweet"), strings.Contains(q, "dessert"):
		return list(catalog.CategoryDessert, "Desserts / sweet picks: ", "We’ve got some sweet treats too!")
	default:
		return "We have vegan, vegetarian, spicy, dessert and drinks—any preference?"
	}
}
