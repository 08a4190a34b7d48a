package catalog

// Canonical categories.
const (
	CategoryMilkshake = "milkshake"
	CategoryDrink     = "drink"
	CategoryDessert   = "dessert"
	CategoryPastry    = "pastry"
)

// DefaultLexicon is used when no lexicon file is configured.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Aliases: []Alias{
			{Phrase: "tomyam", Canonical: "Tom Yum Soup"},
			{Phrase: "tom yam", Canonical: "Tom Yum Soup"},
			{Phrase: "tom yum", Canonical: "Tom Yum Soup"},
			{Phrase: "simple coffee", Canonical: "Simple Coffee"},
			{Phrase: "americano coffee", Canonical: "Americano"},
			{Phrase: "latte", Canonical: "Latte Macchiato"},
		},
		CategorySynonyms: []CategorySynonymSet{
			{Category: CategoryMilkshake, Synonyms: []string{"milkshake", "shake", "milk shake"}},
			{Category: CategoryDrink, Synonyms: []string{"drink", "drinks", "beverage", "coffee", "tea", "juice"}},
			{Category: CategoryDessert, Synonyms: []string{"dessert", "sweet", "sweets"}},
			{Category: CategoryPastry, Synonyms: []string{"pastry", "puff", "roll", "pastries"}},
		},
	}
}

// SynonymSetFor returns the category set that term belongs to.
func (l Lexicon) SynonymSetFor(term string) (CategorySynonymSet, bool) {
	for _, set := range l.CategorySynonyms {
		if set.Contains(term) {
			return set, true
		}
	}
	return CategorySynonymSet{}, false
}
