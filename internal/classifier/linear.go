package classifier

// linear holds the parameters shared by the logistic and SVM variants:
// one weight row and intercept per class, or a single row for two classes.
type linear struct {
	classes   []string
	vec       *vectorizer
	coef      [][]float64
	intercept []float64
}

func (m *linear) decision(text string) []float64 {
	x := m.vec.transform(text)
	out := make([]float64, len(m.coef))
	for c, row := range m.coef {
		s := m.intercept[c]
		for _, f := range x {
			s += row[f.index] * f.value
		}
		out[c] = s
	}
	return out
}

// binaryScores expands a single decision value into per-class scores whose
// softmax equals the logistic sigmoid.
func binaryScores(s float64) []float64 {
	return []float64{0, s}
}

func distribution(classes []string, probs []float64) Distribution {
	d := make(Distribution, len(classes))
	for i, c := range classes {
		d[i] = Prediction{Label: c, Probability: probs[i]}
	}
	return d
}

// logisticModel outputs probabilities natively.
type logisticModel struct {
	linear
	ovr bool
}

func (m *logisticModel) PredictDistribution(text string) Distribution {
	s := m.decision(text)
	if len(s) == 1 {
		p := sigmoid(s[0])
		return distribution(m.classes, []float64{1 - p, p})
	}
	if !m.ovr {
		return distribution(m.classes, Softmax(s))
	}

	probs := make([]float64, len(s))
	var sum float64
	for i, v := range s {
		probs[i] = sigmoid(v)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return distribution(m.classes, probs)
}

// svmModel only has decision scores; they are turned into a distribution
// with Softmax.
type svmModel struct {
	linear
}

func (m *svmModel) PredictDistribution(text string) Distribution {
	s := m.decision(text)
	if len(s) == 1 {
		s = binaryScores(s[0])
	}
	return distribution(m.classes, Softmax(s))
}

// naiveBayesModel is a multinomial naive Bayes over the TF-IDF features.
type naiveBayesModel struct {
	classes        []string
	vec            *vectorizer
	classLogPrior  []float64
	featureLogProb [][]float64
}

func (m *naiveBayesModel) PredictDistribution(text string) Distribution {
	x := m.vec.transform(text)
	jll := make([]float64, len(m.classes))
	for c := range m.classes {
		s := m.classLogPrior[c]
		for _, f := range x {
			s += m.featureLogProb[c][f.index] * f.value
		}
		jll[c] = s
	}
	// Normalising joint log-likelihoods is the same computation as softmax.
	return distribution(m.classes, Softmax(jll))
}
