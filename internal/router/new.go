package router

import (
	"restaurant-bot/internal/classifier"
	"restaurant-bot/internal/conversation"
	"restaurant-bot/internal/session"
	"restaurant-bot/pkg/log"
)

// Router resolves messages to intents and replies. The catalog, rules and
// classifiers it holds are immutable; per-client state lives in the store.
type Router struct {
	rules       RuleEngine
	classifiers *classifier.Registry
	replies     Renderer
	machine     *conversation.Machine
	store       session.Store
	threshold   float64
	l           log.Logger
}

// Config carries the Router dependencies.
type Config struct {
	Rules       RuleEngine
	Classifiers *classifier.Registry
	Replies     Renderer
	Machine     *conversation.Machine
	Store       session.Store
	// Threshold is the classifier confidence below which the intent falls back.
	Threshold float64
}

// New creates a Router.
func New(cfg Config, l log.Logger) *Router {
	m := cfg.Machine
	if m == nil {
		m = conversation.New()
	}
	return &Router{
		rules:       cfg.Rules,
		classifiers: cfg.Classifiers,
		replies:     cfg.Replies,
		machine:     m,
		store:       cfg.Store,
		threshold:   cfg.Threshold,
		l:           l,
	}
}
