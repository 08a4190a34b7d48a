package router

import (
	"restaurant-bot/internal/model"
	"restaurant-bot/internal/reply"
	"restaurant-bot/internal/rules"
)

// Result is the outcome of routing one message.
type Result struct {
	Intent     model.Intent
	Confidence float64
	// Algo is the classifier selected for the call, empty for blank input.
	Algo   string
	Reply  reply.Reply
	Source string
}

// Algorithms describes the loaded classifiers.
type Algorithms struct {
	Available []string `json:"available"`
	Default   string   `json:"default"`
}

// RuleEngine is the deterministic first stage.
type RuleEngine interface {
	Classify(text string) (rules.Match, bool)
}

// Renderer produces the reply for a routed intent.
type Renderer interface {
	Render(intent model.Intent, text string) reply.Reply
}
