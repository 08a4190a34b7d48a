// Package fuzzy provides approximate string similarity scorers on a 0-100
// scale, built on Levenshtein edit distance.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Scorer scores the similarity of two strings on a 0-100 scale.
type Scorer func(a, b string) float64

// Match is one scored choice returned by Extract.
type Match struct {
	Index int
	Score float64
}

// Ratio is the normalised Levenshtein similarity of a and b.
func Ratio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 100
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	d := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(d)/float64(longest))
}

// PartialRatio is the best Ratio of the shorter string against every
// same-length window of the longer one.
func PartialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}
	s := string(short)
	best := 0.0
	for i := 0; i+len(short) <= len(long); i++ {
		r := Ratio(s, string(long[i:i+len(short)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio compares the alphabetically sorted tokens of a and b.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// TokenSetRatio compares the token intersection of a and b against each
// side's remainder, so that a subset of tokens scores 100.
func TokenSetRatio(a, b string) float64 {
	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var common, onlyA, onlyB []string
	for t := range ta {
		if tb[t] {
			common = append(common, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range tb {
		if !ta[t] {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	withA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	withB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := Ratio(withA, withB)
	if base != "" {
		if r := Ratio(base, withA); r > best {
			best = r
		}
		if r := Ratio(base, withB); r > best {
			best = r
		}
	}
	return best
}

// WRatio is a weighted combination of the scorers above that favours
// partial matching when the lengths of a and b differ a lot.
func WRatio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}

	best := Ratio(a, b)
	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	if lenRatio < 1.5 {
		best = max(best, TokenSortRatio(a, b)*unbaseScale, TokenSetRatio(a, b)*unbaseScale)
		return best
	}

	partialScale := 0.9
	if lenRatio >= 8 {
		partialScale = 0.6
	}
	best = max(best,
		PartialRatio(a, b)*partialScale,
		PartialRatio(sortedTokens(a), sortedTokens(b))*unbaseScale*partialScale,
		TokenSetRatio(a, b)*unbaseScale*partialScale,
	)
	return best
}

const unbaseScale = 0.95

// Extract scores query against every choice and returns the best limit
// matches, highest score first. Ties keep the choice order.
func Extract(query string, choices []string, scorer Scorer, limit int) []Match {
	out := make([]Match, 0, len(choices))
	for i, c := range choices {
		out = append(out, Match{Index: i, Score: scorer(query, c)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortedTokens(s string) string {
	toks := strings.Fields(strings.ToLower(s))
	sort.Strings(toks)
	return strings.Join(toks, " ")
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.Fields(strings.ToLower(s)) {
		set[t] = true
	}
	return set
}
