// Package matcher resolves free text to catalog entries through exact-name,
// tag, alias and approximate-name tiers.
package matcher

import (
	"sort"
	"strings"

	"restaurant-bot/internal/catalog"
	"restaurant-bot/pkg/fuzzy"
	"restaurant-bot/pkg/textnorm"
)

// Matcher is immutable and safe for concurrent use.
type Matcher struct {
	ix      *catalog.Index
	entries []catalog.Entry
	names   []string // folded names, aligned with entries
	lexicon catalog.Lexicon
}

// New creates a Matcher over ix and its lexicon.
func New(ix *catalog.Index) *Matcher {
	entries := ix.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = textnorm.Fold(e.Name)
	}
	return &Matcher{
		ix:      ix,
		entries: entries,
		names:   names,
		lexicon: ix.Lexicon(),
	}
}

// NormalizeQuery lower-cases text, appends the synonyms of every category
// mentioned and rewrites alias phrases to their canonical names. It returns
// the rewritten query and the aliases that fired.
func (m *Matcher) NormalizeQuery(text string) (string, []catalog.Alias) {
	q := strings.ToLower(strings.TrimSpace(text))

	for _, set := range m.lexicon.CategorySynonyms {
		if textnorm.ContainsAny(q, set.Synonyms...) {
			q += " " + strings.Join(set.Synonyms, " ")
		}
	}

	// Triggers are decided on the query before any rewrite so a canonical
	// name introduced by one alias cannot fire another.
	var fired []catalog.Alias
	for _, a := range m.lexicon.Aliases {
		if strings.Contains(q, a.Phrase) {
			fired = append(fired, a)
		}
	}
	for _, a := range fired {
		q = strings.ReplaceAll(q, a.Phrase, strings.ToLower(a.Canonical))
	}
	return q, fired
}

// MatchDishes returns up to limit entries, best first, or nil when nothing
// matches.
func (m *Matcher) MatchDishes(text string, limit int) []catalog.Entry {
	hits := m.Match(text, limit)
	if len(hits) == 0 {
		return nil
	}
	out := make([]catalog.Entry, len(hits))
	for i, h := range hits {
		out[i] = h.Entry
	}
	return out
}

// Match returns up to limit scored hits, best first. Equal scores keep
// generation order and each name appears once, with its best score.
func (m *Matcher) Match(text string, limit int) []Hit {
	if strings.TrimSpace(text) == "" || len(m.entries) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	q, fired := m.NormalizeQuery(text)

	var hits []Hit
	hits = append(hits, m.byExactName(text)...)
	hits = append(hits, m.byTag(q)...)
	hits = append(hits, m.byAlias(fired)...)
	hits = append(hits, m.byApproxName(q, limit)...)

	return m.mergeHits(hits, limit)
}

func (m *Matcher) byExactName(text string) []Hit {
	if e, ok := m.ix.LookupByName(text); ok {
		return []Hit{{Entry: e, Score: scoreExactName, Tier: TierExactName}}
	}
	return nil
}

func (m *Matcher) byTag(q string) []Hit {
	tokens := make(map[string]bool)
	for _, t := range textnorm.Tokens(q) {
		tokens[t] = true
	}

	var hits []Hit
	for _, e := range m.entries {
		for _, tag := range e.Tags {
			if tokens[tag] {
				hits = append(hits, Hit{Entry: e, Score: scoreTag, Tier: TierTag})
				break
			}
		}
	}
	return hits
}

func (m *Matcher) byAlias(fired []catalog.Alias) []Hit {
	var hits []Hit
	for _, a := range fired {
		target := textnorm.Fold(a.Canonical)
		for i, e := range m.entries {
			if m.names[i] == target {
				hits = append(hits, Hit{Entry: e, Score: scoreAlias, Tier: TierAlias})
			}
		}
	}
	return hits
}

func (m *Matcher) byApproxName(q string, limit int) []Hit {
	var hits []Hit
	for _, scorer := range []fuzzy.Scorer{fuzzy.WRatio, fuzzy.TokenSetRatio} {
		for _, r := range fuzzy.Extract(q, m.names, scorer, limit*approxFanout) {
			if r.Score >= approxFloor {
				hits = append(hits, Hit{Entry: m.entries[r.Index], Score: r.Score, Tier: TierApprox})
			}
		}
	}
	return hits
}

// mergeHits sorts by descending score and drops repeated names.
func (m *Matcher) mergeHits(hits []Hit, limit int) []Hit {
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	seen := make(map[string]bool)
	merged := make([]Hit, 0, limit)
	for _, h := range hits {
		key := textnorm.Fold(h.Entry.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, h)
		if len(merged) >= limit {
			break
		}
	}
	return merged
}
