package catalog

import (
	"strconv"
	"strings"

	"restaurant-bot/pkg/textnorm"
)

// CurrencyPrefix is prepended to every rendered price.
const CurrencyPrefix = "RM"

// PriceIndex maps normalised names to prices gathered from the menu and from
// auxiliary tabular sources. Keys keep first-insertion order so containment
// searches are deterministic.
type PriceIndex struct {
	prices map[string]float64
	keys   []string
}

func newPriceIndex() *PriceIndex {
	return &PriceIndex{prices: make(map[string]float64)}
}

func (p *PriceIndex) put(name string, price float64) {
	k := textnorm.NameKey(name)
	if k == "" {
		return
	}
	if _, ok := p.prices[k]; !ok {
		p.keys = append(p.keys, k)
	}
	p.prices[k] = price
}

// Len returns the number of indexed names.
func (p *PriceIndex) Len() int {
	return len(p.keys)
}

func (p *PriceIndex) exact(name string) (float64, bool) {
	v, ok := p.prices[textnorm.NameKey(name)]
	return v, ok
}

func (p *PriceIndex) containing(name string) (float64, bool) {
	q := textnorm.NameKey(name)
	if q == "" {
		return 0, false
	}
	for _, k := range p.keys {
		if strings.Contains(k, q) || strings.Contains(q, k) {
			return p.prices[k], true
		}
	}
	return 0, false
}

func buildPriceIndex(entries []Entry, rows [][]string) *PriceIndex {
	p := newPriceIndex()
	for _, e := range entries {
		if e.Price != nil {
			p.put(e.Name, *e.Price)
		}
	}
	for _, row := range rows {
		name, price, ok := ParsePriceRow(row)
		if ok {
			p.put(name, price)
		}
	}
	return p
}

// ParsePriceRow pairs the first alphabetic cell that does not mention "price"
// with the first numeric token found in the row.
func ParsePriceRow(cells []string) (string, float64, bool) {
	var (
		name     string
		priceTok string
	)
	for _, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if name == "" && textnorm.HasLetter(c) && !strings.Contains(strings.ToLower(c), "price") {
			name = c
		}
		if priceTok == "" {
			if n, ok := textnorm.FirstNumber(c); ok {
				priceTok = n
			}
		}
	}
	if name == "" || priceTok == "" {
		return "", 0, false
	}
	v, err := strconv.ParseFloat(priceTok, 64)
	if err != nil {
		return "", 0, false
	}
	return name, v, true
}

// Prices exposes the secondary price index.
func (ix *Index) Prices() *PriceIndex {
	return ix.prices
}

// PriceOf returns the entry's own price, or the indexed price for its exact
// normalised name.
func (ix *Index) PriceOf(e Entry) (float64, bool) {
	if e.Price != nil {
		return *e.Price, true
	}
	return ix.prices.exact(e.Name)
}

// ResolvePrice resolves a price for name: catalog entry price, then the
// secondary index by normalised name, then by containment in either direction.
func (ix *Index) ResolvePrice(name string) (float64, bool) {
	if e, ok := ix.LookupByName(name); ok && e.Price != nil {
		return *e.Price, true
	}
	if v, ok := ix.prices.exact(name); ok {
		return v, true
	}
	return ix.prices.containing(name)
}

// FindPriced returns a priced entry for name. A catalog entry whose name
// equals or overlaps name wins; otherwise an entry named name is synthesised
// from ResolvePrice.
func (ix *Index) FindPriced(name string) (Entry, bool) {
	q := textnorm.NameKey(name)
	if q == "" {
		return Entry{}, false
	}
	for _, e := range ix.entries {
		if e.Price == nil {
			continue
		}
		k := textnorm.NameKey(e.Name)
		if k == q || strings.Contains(k, q) || strings.Contains(q, k) {
			return e, true
		}
	}
	if v, ok := ix.ResolvePrice(name); ok {
		return Entry{Name: name, Price: &v}, true
	}
	return Entry{}, false
}

// Label renders "Name (RMx)" when a price is known and the bare name otherwise.
func (ix *Index) Label(e Entry) string {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		name = "Item"
	}
	if v, ok := ix.PriceOf(e); ok {
		return name + " (" + FormatPrice(v) + ")"
	}
	return name
}

// Labels applies Label to each entry.
func (ix *Index) Labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = ix.Label(e)
	}
	return out
}

// FormatPrice renders p with two decimals, trailing zeros dropped: 12.50 is
// "RM12.5" and 8.00 is "RM8".
func FormatPrice(p float64) string {
	s := strconv.FormatFloat(p, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return CurrencyPrefix + s
}
