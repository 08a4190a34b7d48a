package conversation

import (
	"restaurant-bot/internal/model"
	"restaurant-bot/internal/reply"
)

// Source names the flow that intercepted a turn.
type Source string

const (
	SourceReservation   Source = "reservation"
	SourcePriceFollowUp Source = "price_followup"
)

// Confidence is reported for every intercepted turn.
const Confidence = 1.0

// Turn is the outcome of an intercepted message.
type Turn struct {
	Source     Source
	Intent     model.Intent
	Confidence float64
	// Reply is set when the machine wrote the reply itself. A price
	// follow-up leaves it nil so the caller renders the forced intent.
	Reply *reply.Reply
}

// Forced reports whether the turn bypassed classification for a price follow-up.
func (t Turn) Forced() bool {
	return t.Source == SourcePriceFollowUp
}
