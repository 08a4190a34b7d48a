package classifier

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var artifactSchemaJSON string

var (
	artifactSchemaOnce sync.Once
	artifactSchema     *gojsonschema.Schema
	artifactSchemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	artifactSchemaOnce.Do(func() {
		artifactSchema, artifactSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(artifactSchemaJSON))
	})
	return artifactSchema, artifactSchemaErr
}

// Artifact is the on-disk form of a trained intent classifier: a TF-IDF
// vectorizer description plus the linear model parameters.
type Artifact struct {
	Kind       Kind     `json:"kind"`
	MultiClass string   `json:"multi_class,omitempty"`
	Classes    []string `json:"classes"`
	Vectorizer struct {
		Features []FeatureSpec `json:"features"`
	} `json:"vectorizer"`

	Coef      [][]float64 `json:"coef,omitempty"`
	Intercept []float64   `json:"intercept,omitempty"`

	ClassLogPrior  []float64   `json:"class_log_prior,omitempty"`
	FeatureLogProb [][]float64 `json:"feature_log_prob,omitempty"`
}

// ParseArtifact validates b against the artifact schema, decodes it and
// checks that every parameter has the dimensions the vectorizer implies.
func ParseArtifact(b []byte) (*Artifact, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile artifact schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, errs)
	}

	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}
	if err := a.checkDims(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}
	return &a, nil
}

// Dim is the length of the concatenated feature vector.
func (a *Artifact) Dim() int {
	n := 0
	for _, f := range a.Vectorizer.Features {
		n += f.Dim()
	}
	return n
}

func (a *Artifact) checkDims() error {
	for i, f := range a.Vectorizer.Features {
		if f.NgramRange[0] > f.NgramRange[1] {
			return fmt.Errorf("features[%d]: ngram_range %v is inverted", i, f.NgramRange)
		}
		for term, idx := range f.Vocabulary {
			if idx >= f.Dim() {
				return fmt.Errorf("features[%d]: vocabulary %q index %d outside idf length %d", i, term, idx, f.Dim())
			}
		}
	}

	nClasses, dim := len(a.Classes), a.Dim()
	switch a.Kind {
	case KindLogistic, KindLinearSVM:
		rows := len(a.Coef)
		if rows != nClasses && !(nClasses == 2 && rows == 1) {
			return fmt.Errorf("coef has %d rows for %d classes", rows, nClasses)
		}
		if len(a.Intercept) != rows {
			return fmt.Errorf("intercept has %d values for %d coef rows", len(a.Intercept), rows)
		}
		return checkMatrix("coef", a.Coef, dim)
	case KindNaiveBayes:
		if len(a.ClassLogPrior) != nClasses {
			return fmt.Errorf("class_log_prior has %d values for %d classes", len(a.ClassLogPrior), nClasses)
		}
		if len(a.FeatureLogProb) != nClasses {
			return fmt.Errorf("feature_log_prob has %d rows for %d classes", len(a.FeatureLogProb), nClasses)
		}
		return checkMatrix("feature_log_prob", a.FeatureLogProb, dim)
	default:
		return fmt.Errorf("unknown kind %q", a.Kind)
	}
}

func checkMatrix(name string, m [][]float64, dim int) error {
	for i, row := range m {
		if len(row) != dim {
			return fmt.Errorf("%s[%d] has %d columns, vectorizer has %d features", name, i, len(row), dim)
		}
	}
	return nil
}

// NewModel builds the predictor an artifact describes.
func NewModel(a *Artifact) (Model, error) {
	vec := newVectorizer(a.Vectorizer.Features)
	switch a.Kind {
	case KindLogistic:
		return &logisticModel{
			linear: linear{classes: a.Classes, vec: vec, coef: a.Coef, intercept: a.Intercept},
			ovr:    a.MultiClass == "ovr",
		}, nil
	case KindLinearSVM:
		return &svmModel{
			linear: linear{classes: a.Classes, vec: vec, coef: a.Coef, intercept: a.Intercept},
		}, nil
	case KindNaiveBayes:
		return &naiveBayesModel{
			classes:        a.Classes,
			vec:            vec,
			classLogPrior:  a.ClassLogPrior,
			featureLogProb: a.FeatureLogProb,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidArtifact, a.Kind)
	}
}
