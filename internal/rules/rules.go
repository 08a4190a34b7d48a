// Package rules is the deterministic first stage of routing: an ordered list
// of keyword and pattern rules where the first match wins.
package rules

import (
	"regexp"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"restaurant-bot/internal/model"
	"restaurant-bot/pkg/textnorm"
)

// Confidence is reported for every rule match.
const Confidence = 1.0

// Rule names, in evaluation order.
const (
	RuleOpeningHours = "opening_hours"
	RulePrice        = "price"
	RuleChef         = "chef"
	RuleBestSeller   = "best_seller"
	RuleRecommend    = "recommend"
	RulePayment      = "payment"
	RuleLocation     = "location"
	RuleCatalogName  = "catalog_name"
	RuleMenu         = "menu"
	RuleBooking      = "booking"
	RuleGreeting     = "greeting"
)

var rulesFired = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "restaurant_bot",
	Subsystem: "rules",
	Name:      "fired_total",
	Help:      "Rule engine matches by rule name",
}, []string{"rule"})

// NameIndex reports whether a text mentions any catalog item.
type NameIndex interface {
	ContainsAnyName(text string) bool
}

// Rule maps a predicate over lower-cased text to an intent.
type Rule struct {
	Name   string
	Intent model.Intent
	match  func(text string) bool
}

// Match is the outcome of a rule hit.
type Match struct {
	Intent     model.Intent
	Rule       string
	Confidence float64
}

// Engine evaluates its rules in a fixed priority order. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	rules []Rule
}

// New builds the engine. names backs the catalog-name rule.
func New(names NameIndex) *Engine {
	return &Engine{rules: []Rule{
		{Name: RuleOpeningHours, Intent: model.IntentOpeningHours, match: keywords(hoursWords)},
		{Name: RulePrice, Intent: model.IntentPriceQuery, match: patterns(pricePatterns)},
		{Name: RuleChef, Intent: model.IntentDishQuery, match: patterns(chefPatterns)},
		{Name: RuleBestSeller, Intent: model.IntentDishQuery, match: keywords(bestWords)},
		{Name: RuleRecommend, Intent: model.IntentDishQuery, match: keywords(recommendWords)},
		{Name: RulePayment, Intent: model.IntentPaymentMethods, match: keywords(paymentWords)},
		{Name: RuleLocation, Intent: model.IntentLocationParking, match: keywords(locationWords)},
		{Name: RuleCatalogName, Intent: model.IntentDishQuery, match: names.ContainsAnyName},
		{Name: RuleMenu, Intent: model.IntentMenuItems, match: keywords(menuWords)},
		{Name: RuleBooking, Intent: model.IntentMakeReservation, match: keywords(bookWords)},
		{Name: RuleGreeting, Intent: model.IntentGreet, match: greetPattern.MatchString},
	}}
}

// Classify returns the intent of the first rule matching text, or false when
// every rule declines.
func (e *Engine) Classify(text string) (Match, bool) {
	t := strings.ToLower(text)
	for _, r := range e.rules {
		if r.match(t) {
			rulesFired.WithLabelValues(r.Name).Inc()
			return Match{Intent: r.Intent, Rule: r.Name, Confidence: Confidence}, true
		}
	}
	return Match{}, false
}

// Names lists the rule names in evaluation order.
func (e *Engine) Names() []string {
	out := make([]string, len(e.rules))
	for i, r := range e.rules {
		out[i] = r.Name
	}
	return out
}

func keywords(words []string) func(string) bool {
	return func(t string) bool { return textnorm.ContainsAny(t, words...) }
}

func patterns(res []*regexp.Regexp) func(string) bool {
	return func(t string) bool {
		for _, re := range res {
			if re.MatchString(t) {
				return true
			}
		}
		return false
	}
}
