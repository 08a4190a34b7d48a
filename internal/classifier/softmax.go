package classifier

import "math"

// Softmax maps unbounded scores to probabilities. The max score is subtracted
// before exponentiating so large scores cannot overflow.
func Softmax(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	m := scores[0]
	for _, s := range scores[1:] {
		if s > m {
			m = s
		}
	}

	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - m)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
