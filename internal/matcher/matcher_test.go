package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-bot/internal/catalog/catalogtest"
)

func TestMatcher_CanonicalNameIsTopHit(t *testing.T) {
	ix := catalogtest.Index()
	m := New(ix)

	for _, e := range ix.Entries() {
		t.Run(e.Name, func(t *testing.T) {
			hits := m.Match(e.Name, DefaultLimit)
			require.NotEmpty(t, hits)
			assert.Equal(t, e.Name, hits[0].Entry.Name)
			assert.GreaterOrEqual(t, hits[0].Score, 99.0)
		})
	}
}

func TestMatcher_NormalizeQuery(t *testing.T) {
	m := New(catalogtest.Index())

	tests := []struct {
		name      string
		in        string
		wantQuery string
		wantFired []string
	}{
		{"alias rewrite", "Tomyam please", "tom yum soup please", []string{"tomyam"}},
		{"category expansion", "any shake", "any shake milkshake shake milk shake", nil},
		{"expansion then alias", "latte", "latte macchiato", []string{"latte"}},
		{"untouched", "nasi lemak", "nasi lemak", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, fired := m.NormalizeQuery(tc.in)
			assert.Equal(t, tc.wantQuery, q)
			var phrases []string
			for _, a := range fired {
				phrases = append(phrases, a.Phrase)
			}
			assert.Equal(t, tc.wantFired, phrases)
		})
	}
}

func TestMatcher_MatchDishes(t *testing.T) {
	m := New(catalogtest.Index())

	tests := []struct {
		name     string
		text     string
		wantTop  string
		wantTier Tier
	}{
		{"alias", "tomyam", "Tom Yum Soup", TierTag},
		{"alias without tag", "latte", "Latte Macchiato", TierApprox},
		{"tag", "milkshake", "Chocolate Milkshake", TierTag},
		{"typo", "chocolat milkshak", "Chocolate Milkshake", TierApprox},
		{"diacritics", "creme brulee", "Crème Brûlée", TierExactName},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hits := m.Match(tc.text, DefaultLimit)
			require.NotEmpty(t, hits)
			assert.Equal(t, tc.wantTop, hits[0].Entry.Name)
			assert.Equal(t, tc.wantTier, hits[0].Tier)

			dishes := m.MatchDishes(tc.text, DefaultLimit)
			assert.Equal(t, tc.wantTop, dishes[0].Name)
		})
	}
}

func TestMatcher_MergeRules(t *testing.T) {
	m := New(catalogtest.Index())

	t.Run("sorted, unique and limited", func(t *testing.T) {
		hits := m.Match("coffee", 3)
		require.Len(t, hits, 3)

		seen := map[string]bool{}
		for i, h := range hits {
			assert.False(t, seen[h.Entry.Name], "duplicate %s", h.Entry.Name)
			seen[h.Entry.Name] = true
			if i > 0 {
				assert.LessOrEqual(t, h.Score, hits[i-1].Score)
			}
		}
	})

	t.Run("tag ties keep catalog order", func(t *testing.T) {
		hits := m.Match("spicy", DefaultLimit)
		require.GreaterOrEqual(t, len(hits), 2)
		assert.Equal(t, "Tom Yum Soup", hits[0].Entry.Name)
		assert.Equal(t, "Spicy Sambal Prawns", hits[1].Entry.Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, m.Match("xyzzy", DefaultLimit))
	})

	t.Run("blank", func(t *testing.T) {
		assert.Nil(t, m.MatchDishes("   ", DefaultLimit))
	})
}
