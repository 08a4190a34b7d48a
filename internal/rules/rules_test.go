package rules

import (
	"strings"
	"testing"

	"restaurant-bot/internal/model"
)

type fakeNames []string

func (f fakeNames) ContainsAnyName(text string) bool {
	for _, n := range f {
		if strings.Contains(text, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func newEngine() *Engine {
	return New(fakeNames{"Tom Yum Soup", "Latte Macchiato"})
}

func TestEngine_Classify(t *testing.T) {
	e := newEngine()

	tests := []struct {
		name       string
		text       string
		wantIntent model.Intent
		wantRule   string
	}{
		{"hours", "What are your opening hours?", model.IntentOpeningHours, RuleOpeningHours},
		{"closing", "closing time today", model.IntentOpeningHours, RuleOpeningHours},
		{"price", "price of latte", model.IntentPriceQuery, RulePrice},
		{"price misspelt", "how mush is the tom yum", model.IntentPriceQuery, RulePrice},
		{"price mosh", "HOW MOSH", model.IntentPriceQuery, RulePrice},
		{"chef possessive", "chef's recommendation?", model.IntentDishQuery, RuleChef},
		{"chef typo", "chef recomended dish", model.IntentDishQuery, RuleChef},
		{"recommended by chef", "anything recommended by chef", model.IntentDishQuery, RuleChef},
		{"best seller", "what's your best seller", model.IntentDishQuery, RuleBestSeller},
		{"recommend", "can you suggest something", model.IntentDishQuery, RuleRecommend},
		{"payment", "do you accept visa", model.IntentPaymentMethods, RulePayment},
		{"location", "where are you located", model.IntentLocationParking, RuleLocation},
		{"parking", "is there parking", model.IntentLocationParking, RuleLocation},
		{"catalog name", "one Tom Yum Soup", model.IntentDishQuery, RuleCatalogName},
		{"menu", "show me the menu", model.IntentMenuItems, RuleMenu},
		{"category", "any milkshake?", model.IntentMenuItems, RuleMenu},
		{"booking", "book a table", model.IntentMakeReservation, RuleBooking},
		{"greeting", "hi there", model.IntentGreet, RuleGreeting},
		{"greeting punctuation", "Hello!", model.IntentGreet, RuleGreeting},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := e.Classify(tc.text)
			if !ok {
				t.Fatalf("Classify(%q) declined", tc.text)
			}
			if m.Intent != tc.wantIntent {
				t.Errorf("intent = %s, want %s", m.Intent, tc.wantIntent)
			}
			if m.Rule != tc.wantRule {
				t.Errorf("rule = %s, want %s", m.Rule, tc.wantRule)
			}
			if m.Confidence != 1.0 {
				t.Errorf("confidence = %v, want 1", m.Confidence)
			}
		})
	}
}

func TestEngine_Declines(t *testing.T) {
	e := newEngine()

	for _, text := range []string{"chicken", "this is a thing", "", "ok thanks bye"} {
		if m, ok := e.Classify(text); ok {
			t.Errorf("Classify(%q) = %+v, want decline", text, m)
		}
	}
}

func TestEngine_WholeWordGreeting(t *testing.T) {
	e := newEngine()

	if m, ok := e.Classify("chicken"); ok && m.Intent == model.IntentGreet {
		t.Errorf("chicken must not greet")
	}
	if m, ok := e.Classify("hi there"); !ok || m.Intent != model.IntentGreet {
		t.Errorf("hi there = %+v, want greet", m)
	}
}

func TestEngine_PriceBeatsBooking(t *testing.T) {
	e := newEngine()

	texts := []string{
		"how much to book a table",
		"what is the cost of a reservation",
		"booking price",
		"reserve a room, how much is it",
	}
	for _, text := range texts {
		m, ok := e.Classify(text)
		if !ok || m.Intent != model.IntentPriceQuery {
			t.Errorf("Classify(%q) = %+v, want price_query", text, m)
		}
	}
}

func TestEngine_Names(t *testing.T) {
	got := newEngine().Names()
	want := []string{
		RuleOpeningHours, RulePrice, RuleChef, RuleBestSeller, RuleRecommend, RulePayment,
		RuleLocation, RuleCatalogName, RuleMenu, RuleBooking, RuleGreeting,
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
