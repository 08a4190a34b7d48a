package classifier

import (
	"math"
	"regexp"
	"strings"
)

// Analyzer names accepted in artifacts.
const (
	AnalyzerWord   = "word"
	AnalyzerCharWB = "char_wb"
)

var (
	reWordToken  = regexp.MustCompile(`\b\w\w+\b`)
	reWhitespace = regexp.MustCompile(`\s\s+`)
)

// FeatureSpec describes one TF-IDF block of the feature vector.
type FeatureSpec struct {
	Analyzer    string         `json:"analyzer"`
	NgramRange  [2]int         `json:"ngram_range"`
	Lowercase   *bool          `json:"lowercase,omitempty"`
	SublinearTF bool           `json:"sublinear_tf,omitempty"`
	Norm        string         `json:"norm,omitempty"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
}

// Dim is the number of features the block contributes.
func (f FeatureSpec) Dim() int {
	return len(f.IDF)
}

func (f FeatureSpec) lowercase() bool {
	return f.Lowercase == nil || *f.Lowercase
}

// feature is one non-zero component of a sparse vector.
type feature struct {
	index int
	value float64
}

// vectorizer concatenates TF-IDF blocks into one sparse vector.
type vectorizer struct {
	blocks []FeatureSpec
	dim    int
}

func newVectorizer(blocks []FeatureSpec) *vectorizer {
	v := &vectorizer{blocks: blocks}
	for _, b := range blocks {
		v.dim += b.Dim()
	}
	return v
}

func (v *vectorizer) transform(text string) []feature {
	var out []feature
	offset := 0
	for _, b := range v.blocks {
		out = append(out, b.transform(text, offset)...)
		offset += b.Dim()
	}
	return out
}

func (f FeatureSpec) transform(text string, offset int) []feature {
	if f.lowercase() {
		text = strings.ToLower(text)
	}

	var grams []string
	switch f.Analyzer {
	case AnalyzerCharWB:
		grams = charWBNgrams(text, f.NgramRange[0], f.NgramRange[1])
	default:
		grams = wordNgrams(text, f.NgramRange[0], f.NgramRange[1])
	}

	counts := make(map[int]float64)
	var order []int
	for _, g := range grams {
		idx, ok := f.Vocabulary[g]
		if !ok {
			continue
		}
		if _, seen := counts[idx]; !seen {
			order = append(order, idx)
		}
		counts[idx]++
	}

	out := make([]feature, 0, len(order))
	var norm float64
	for _, idx := range order {
		tf := counts[idx]
		if f.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		w := tf * f.IDF[idx]
		norm += w * w
		out = append(out, feature{index: offset + idx, value: w})
	}

	if f.Norm != "none" && norm > 0 {
		norm = math.Sqrt(norm)
		for i := range out {
			out[i].value /= norm
		}
	}
	return out
}

func wordNgrams(text string, minN, maxN int) []string {
	tokens := reWordToken.FindAllString(text, -1)
	var grams []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}

// charWBNgrams builds character n-grams inside word boundaries, each word
// padded with one space on both sides.
func charWBNgrams(text string, minN, maxN int) []string {
	text = reWhitespace.ReplaceAllString(text, " ")
	var grams []string
	for _, w := range strings.Fields(text) {
		r := []rune(" " + w + " ")
		for n := minN; n <= maxN; n++ {
			if n >= len(r) {
				grams = append(grams, string(r))
				break
			}
			for off := 0; off+n <= len(r); off++ {
				grams = append(grams, string(r[off:off+n]))
			}
		}
	}
	return grams
}
