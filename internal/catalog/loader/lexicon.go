package loader

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"restaurant-bot/internal/catalog"
)

// ReadLexicon reads aliases and category synonyms from a YAML file. Sections
// missing from the file keep the built-in defaults.
func ReadLexicon(path string) (catalog.Lexicon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return catalog.Lexicon{}, fmt.Errorf("%w: %w", ErrReadLexicon, err)
	}
	return ParseLexicon(b)
}

// ParseLexicon decodes lexicon YAML and lower-cases every phrase and synonym.
func ParseLexicon(b []byte) (catalog.Lexicon, error) {
	var lx catalog.Lexicon
	if err := yaml.Unmarshal(b, &lx); err != nil {
		return catalog.Lexicon{}, fmt.Errorf("%w: %w", ErrReadLexicon, err)
	}

	def := catalog.DefaultLexicon()
	if lx.Aliases == nil {
		lx.Aliases = def.Aliases
	}
	if lx.CategorySynonyms == nil {
		lx.CategorySynonyms = def.CategorySynonyms
	}

	aliases := make([]catalog.Alias, 0, len(lx.Aliases))
	for _, a := range lx.Aliases {
		phrase := strings.ToLower(strings.TrimSpace(a.Phrase))
		canonical := strings.TrimSpace(a.Canonical)
		if phrase == "" || canonical == "" {
			continue
		}
		aliases = append(aliases, catalog.Alias{Phrase: phrase, Canonical: canonical})
	}
	lx.Aliases = aliases

	for i, set := range lx.CategorySynonyms {
		set.Category = strings.ToLower(strings.TrimSpace(set.Category))
		syns := make([]string, 0, len(set.Synonyms))
		for _, s := range set.Synonyms {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				syns = append(syns, s)
			}
		}
		set.Synonyms = syns
		lx.CategorySynonyms[i] = set
	}
	return lx, nil
}
