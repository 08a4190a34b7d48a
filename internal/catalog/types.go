package catalog

// Record is one raw catalog row as supplied by a source loader.
type Record struct {
	Name       string
	Price      *float64
	Tags       []string
	Popularity int
}

// Entry is a normalised, de-duplicated catalog item.
type Entry struct {
	Name       string
	Tags       []string // lower-case, insertion ordered, unique
	Price      *float64
	Popularity int
}

// HasTag reports whether the entry carries tag (already lower-case).
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasPrice reports whether a price is attached directly to the entry.
func (e Entry) HasPrice() bool {
	return e.Price != nil
}

// Alias maps a free-text phrase to a canonical catalog name.
type Alias struct {
	Phrase    string `yaml:"phrase"`
	Canonical string `yaml:"canonical"`
}

// CategorySynonymSet lists the surface forms of a canonical category.
type CategorySynonymSet struct {
	Category string   `yaml:"category"`
	Synonyms []string `yaml:"synonyms"`
}

// Contains reports whether term is the category itself or one of its synonyms.
func (s CategorySynonymSet) Contains(term string) bool {
	if term == s.Category {
		return true
	}
	for _, syn := range s.Synonyms {
		if syn == term {
			return true
		}
	}
	return false
}

// Lexicon is the alias and synonym data applied around catalog matching.
// Both lists are ordered; the order decides which rewrite happens first.
type Lexicon struct {
	Aliases          []Alias              `yaml:"aliases"`
	CategorySynonyms []CategorySynonymSet `yaml:"category_synonyms"`
}

// BuildInput is everything Build needs.
type BuildInput struct {
	// Sources are merged in order; the first occurrence of a name wins.
	Sources [][]Record
	// PriceRows are the cells of auxiliary tabular price sources.
	PriceRows [][]string
	Lexicon   Lexicon
}
