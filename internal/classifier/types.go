package classifier

// Kind is the family of a trained linear model.
type Kind string

const (
	KindLogistic   Kind = "logistic"
	KindNaiveBayes Kind = "naive_bayes"
	KindLinearSVM  Kind = "linear_svm"
)

// Canonical handle ids, in default preference order.
const (
	AlgoLR  = "lr"
	AlgoNB  = "nb"
	AlgoSVM = "svm"
)

// CanonicalOrder is the order handles are loaded in and the default is picked from.
var CanonicalOrder = []string{AlgoLR, AlgoNB, AlgoSVM}

// Prediction is one class with its probability.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Distribution lists every class in model order. Probabilities are
// non-negative and sum to 1.
type Distribution []Prediction

// Best returns the most probable class; the first class wins ties.
func (d Distribution) Best() Prediction {
	var best Prediction
	for i, p := range d {
		if i == 0 || p.Probability > best.Probability {
			best = p
		}
	}
	return best
}

// Model produces a class distribution for raw text.
type Model interface {
	PredictDistribution(text string) Distribution
}
