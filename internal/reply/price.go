package reply

import (
	"fmt"
	"regexp"

	"restaurant-bot/internal/catalog"
	"restaurant-bot/pkg/textnorm"
)

// Phrases removed from a price question to leave the item being asked about.
var (
	priceNoise = []*regexp.Regexp{
		regexp.MustCompile(`\b(how\s+m[uo]?sh|how\s+much)\s+(is|are)\b`),
		regexp.MustCompile(`\b(how\s+m[uo]?sh|how\s+much)\b`),
		regexp.MustCompile(`\b(price|cost)\s+(of|for)\b`),
		regexp.MustCompile(`\b(price|cost)\b`),
		regexp.MustCompile(`[^\w\s]`),
	}
	priceMilkshakeWords = []string{"milkshake", "shake"}
)

// PriceSubject strips the price wording from q.
func PriceSubject(q string) string {
	for _, re := range priceNoise {
		q = re.ReplaceAllString(q, " ")
	}
	return textnorm.CollapseSpaces(q)
}

func (t *Templater) price(q string) Reply {
	subject := PriceSubject(q)

	if textnorm.ContainsAny(subject, priceMilkshakeWords...) {
		if ms := t.ix.ListByTag(catalog.CategoryMilkshake, categoryLimit); len(ms) > 0 {
			return plain("Prices (milkshakes): " + t.join(head(ms, priceListLimit), "; "))
		}
	}
	if textnorm.ContainsAny(subject, dessertWords...) {
		if ds := t.ix.ListByTag(catalog.CategoryDessert, categoryLimit); len(ds) > 0 {
			return plain("Prices (desserts): " + t.join(head(ds, priceListLimit), "; "))
		}
	}

	// Nothing left after stripping means no item was named.
	if subject == "" {
		return Reply{Text: TextAskPriceItem, Signal: SignalAwaitPriceItem}
	}

	if hits := t.m.MatchDishes(subject, dishLimit); len(hits) > 0 {
		return plain(t.priceOfHit(subject, hits))
	}
	if alt, ok := t.ix.FindPriced(subject); ok {
		return plain("Price: " + t.ix.Label(alt))
	}
	return Reply{Text: TextAskPriceItem, Signal: SignalAwaitPriceItem}
}

func (t *Templater) priceOfHit(subject string, hits []catalog.Entry) string {
	item := hits[0]
	if item.HasPrice() {
		return "Price: " + t.ix.Label(item)
	}
	if alt, ok := t.ix.FindPriced(item.Name); ok {
		return "Price: " + t.ix.Label(alt)
	}
	if alt, ok := t.ix.FindPriced(subject); ok {
		return "Price: " + t.ix.Label(alt)
	}

	var similar []catalog.Entry
	for _, h := range head(hits[1:], similarLimit) {
		if _, ok := t.ix.PriceOf(h); ok {
			similar = append(similar, h)
		}
	}
	if len(similar) > 0 {
		return fmt.Sprintf("Price for %s isn’t listed. Similar items: %s", item.Name, t.join(similar, "; "))
	}
	return fmt.Sprintf("Sorry, I couldn’t find a price for %s.", item.Name)
}
