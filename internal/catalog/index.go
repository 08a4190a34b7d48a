// Package catalog is the read-only view of the menu: merged entries, tag and
// name lookups, and tolerant price resolution.
package catalog

import (
	"regexp"
	"sort"
	"strings"

	"restaurant-bot/pkg/textnorm"
)

// DefaultListLimit is the ListByTag limit used by callers without a preference.
const DefaultListLimit = 12

var reTagSplit = regexp.MustCompile(`[;,]\s*`)

// Index is immutable after Build and safe for concurrent reads.
type Index struct {
	entries []Entry
	byKey   map[string]int
	folded  []string // Fold(name) per entry, for containment checks
	lexicon Lexicon
	prices  *PriceIndex
}

// Build merges the sources in order. Records with a blank name are dropped;
// the first record of a name wins and later duplicates are ignored.
func Build(input BuildInput) *Index {
	ix := &Index{
		byKey:   make(map[string]int),
		lexicon: input.Lexicon,
	}

	seen := make(map[string]bool)
	for _, src := range input.Sources {
		for _, rec := range src {
			name := strings.TrimSpace(rec.Name)
			mergeKey := textnorm.Fold(name)
			if name == "" || seen[mergeKey] {
				continue
			}
			seen[mergeKey] = true

			e := Entry{
				Name:       name,
				Tags:       normalizeTags(rec.Tags),
				Popularity: rec.Popularity,
			}
			if rec.Price != nil {
				p := *rec.Price
				e.Price = &p
			}

			ix.entries = append(ix.entries, e)
			ix.folded = append(ix.folded, mergeKey)
			if k := textnorm.NameKey(name); k != "" {
				if _, dup := ix.byKey[k]; !dup {
					ix.byKey[k] = len(ix.entries) - 1
				}
			}
		}
	}

	ix.prices = buildPriceIndex(ix.entries, input.PriceRows)
	return ix
}

func normalizeTags(raw []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, field := range raw {
		for _, t := range reTagSplit.Split(field, -1) {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of distinct entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns a copy of all entries in merge order.
func (ix *Index) Entries() []Entry {
	out := make([]Entry, len(ix.entries))
	copy(out, ix.entries)
	return out
}

// Lexicon returns the alias and synonym tables the index was built with.
func (ix *Index) Lexicon() Lexicon {
	return ix.lexicon
}

// LookupByName finds an entry by case, space, punctuation and diacritic
// insensitive exact name.
func (ix *Index) LookupByName(name string) (Entry, bool) {
	i, ok := ix.byKey[textnorm.NameKey(name)]
	if !ok {
		return Entry{}, false
	}
	return ix.entries[i], true
}

// LookupAll returns the entries for names that exist, in the order given.
func (ix *Index) LookupAll(names []string) []Entry {
	var out []Entry
	for _, n := range names {
		if e, ok := ix.LookupByName(n); ok {
			out = append(out, e)
		}
	}
	return out
}

// ListByTag returns entries whose tags or name contain tag. If tag belongs to
// a category synonym set, entries matching any synonym of that set are added.
// Results are unique by name, keep catalog order per pass, and are cut at limit.
func (ix *Index) ListByTag(tag string, limit int) []Entry {
	t := strings.ToLower(strings.TrimSpace(tag))
	if t == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	res := ix.matchTerm(t)
	if set, ok := ix.lexicon.SynonymSetFor(t); ok {
		for _, syn := range set.Synonyms {
			res = append(res, ix.matchTerm(syn)...)
		}
	}

	out := make([]Entry, 0, limit)
	seen := make(map[string]bool)
	for _, i := range res {
		k := ix.folded[i]
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, ix.entries[i])
		if len(out) >= limit {
			break
		}
	}
	return out
}

func (ix *Index) matchTerm(term string) []int {
	var idx []int
	for i, e := range ix.entries {
		if e.HasTag(term) || strings.Contains(ix.folded[i], term) {
			idx = append(idx, i)
		}
	}
	return idx
}

// ContainsAnyName reports whether any catalog name occurs in text.
func (ix *Index) ContainsAnyName(text string) bool {
	t := textnorm.Fold(text)
	for _, name := range ix.folded {
		if name != "" && strings.Contains(t, name) {
			return true
		}
	}
	return false
}

// PopularFirst returns entries ordered by descending popularity; equal
// popularity keeps the given order.
func PopularFirst(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	return out
}
