package reply

import (
	"fmt"
	"strings"

	"restaurant-bot/internal/catalog"
	"restaurant-bot/pkg/textnorm"
)

func (t *Templater) dish(q string) string {
	wantOne := textnorm.ContainsAny(q, wantOneWords...)
	askBest := textnorm.ContainsAny(q, bestWords...)
	askChef := strings.Contains(q, "chef") && textnorm.ContainsAny(q, chefCueWords...)

	if askChef {
		return t.chefPicks()
	}
	if askBest {
		return t.bestSellers(q)
	}

	if hits := t.m.MatchDishes(q, dishLimit); len(hits) > 0 {
		best := t.ix.Label(hits[0])
		switch {
		case wantOne:
			return fmt.Sprintf("I'd suggest: %s. Want another recommendation?", best)
		case textnorm.ContainsAny(q, singleChoiceWords...) || len(hits) == 1:
			return best + " — great choice!"
		default:
			return "You might like: " + t.join(hits, ", ")
		}
	}

	if textnorm.ContainsAny(q, milkshakeWords...) {
		if ms := t.ix.ListByTag(catalog.CategoryMilkshake, categoryLimit); len(ms) > 0 {
			return fmt.Sprintf("Try this milkshake: %s.", t.ix.Label(catalog.PopularFirst(ms)[0]))
		}
	}
	if textnorm.ContainsAny(q, dessertWords...) {
		if ds := t.ix.ListByTag(catalog.CategoryDessert, categoryLimit); len(ds) > 0 {
			return fmt.Sprintf("My pick: %s.", t.ix.Label(catalog.PopularFirst(ds)[0]))
		}
	}
	return TextAskDish
}

// chefPicks prefers the curated list, then entries tagged like chef
// specials, then the most popular entries overall.
func (t *Templater) chefPicks() string {
	picks := t.ix.LookupAll(t.info.ChefPicks)
	if len(picks) == 0 {
		seen := make(map[string]bool)
		var tagged []catalog.Entry
		for _, tag := range chefTags {
			for _, e := range t.ix.ListByTag(tag, categoryLimit) {
				k := textnorm.NameKey(e.Name)
				if k == "" || seen[k] {
					continue
				}
				seen[k] = true
				tagged = append(tagged, e)
			}
		}
		if len(tagged) > 0 {
			picks = catalog.PopularFirst(tagged)
		} else {
			picks = catalog.PopularFirst(t.ix.Entries())
		}
	}

	if picks = head(picks, chefLimit); len(picks) == 0 {
		return "Chef is crafting something special today!"
	}
	return "Chef’s recommendations today: " + t.join(picks, ", ")
}

func (t *Templater) bestSellers(q string) string {
	byCategory := []struct {
		words    []string
		category string
		prefix   string
	}{
		{milkshakeWords, catalog.CategoryMilkshake, "Best-selling milkshakes: "},
		{dessertWords, catalog.CategoryDessert, "Best-selling desserts: "},
		{drinkWords, catalog.CategoryDrink, "Best-selling drinks: "},
	}
	for _, c := range byCategory {
		if !textnorm.ContainsAny(q, c.words...) {
			continue
		}
		if top := head(catalog.PopularFirst(t.ix.ListByTag(c.category, categoryLimit)), bestLimit); len(top) > 0 {
			return c.prefix + t.join(top, ", ")
		}
	}

	if overall := head(catalog.PopularFirst(t.ix.Entries()), bestLimit); len(overall) > 0 {
		return "Our best sellers: " + t.join(overall, ", ")
	}
	return "Our best sellers change daily!"
}
