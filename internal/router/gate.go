package router

import "restaurant-bot/internal/model"

// Gate replaces intent with fallback when confidence is below threshold.
// The confidence is reported unchanged.
func Gate(intent model.Intent, confidence, threshold float64) (model.Intent, float64) {
	if confidence < threshold {
		return model.IntentFallback, confidence
	}
	return intent, confidence
}
