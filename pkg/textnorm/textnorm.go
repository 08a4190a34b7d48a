// Package textnorm holds the text normalisation helpers shared by the catalog,
// matcher, rule engine and reply templater.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reSeparators = regexp.MustCompile(`[-_/]+`)
	reSpaces     = regexp.MustCompile(`\s+`)
	reNonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	reWord       = regexp.MustCompile(`\w+`)
	reNumber     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reInteger    = regexp.MustCompile(`\d+`)
	reAlpha      = regexp.MustCompile(`[A-Za-z]`)
)

// Fold lower-cases s and strips combining marks, so "Crème Brûlée" folds to
// "creme brulee".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Normalize lower-cases s, turns "-", "_" and "/" runs into spaces and
// collapses whitespace.
func Normalize(s string) string {
	t := strings.ToLower(s)
	t = reSeparators.ReplaceAllString(t, " ")
	t = reSpaces.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// NameKey is the case, diacritic, space and punctuation insensitive key used
// to compare catalog names.
func NameKey(s string) string {
	return strings.TrimSpace(reNonAlnum.ReplaceAllString(Fold(s), " "))
}

// Tokens returns the word tokens of s in order.
func Tokens(s string) []string {
	return reWord.FindAllString(s, -1)
}

// CollapseSpaces collapses whitespace runs and trims.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// FirstNumber returns the first decimal number in s.
func FirstNumber(s string) (string, bool) {
	m := reNumber.FindString(s)
	return m, m != ""
}

// FirstInteger returns the first run of digits in s.
func FirstInteger(s string) (string, bool) {
	m := reInteger.FindString(s)
	return m, m != ""
}

// HasLetter reports whether s contains an ASCII letter.
func HasLetter(s string) bool {
	return reAlpha.MatchString(s)
}

// ContainsAny reports whether any of needles is a substring of s.
func ContainsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
