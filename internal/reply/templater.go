// Package reply renders the user-facing text for a routed intent and reports
// which follow-up, if any, the text asks for.
package reply

import (
	"fmt"
	"regexp"
	"strings"

	"restaurant-bot/internal/catalog"
	"restaurant-bot/internal/model"
	"restaurant-bot/pkg/textnorm"
)

var reClosing = regexp.MustCompile(`\b(close|closing|closing\s+time|closing\s+hour|close\s*time|last\s*order)\b`)

// DishMatcher resolves free text to catalog entries, best first.
type DishMatcher interface {
	MatchDishes(text string, limit int) []catalog.Entry
}

// Templater is immutable after New and safe for concurrent use.
type Templater struct {
	ix   *catalog.Index
	m    DishMatcher
	info Info
}

// New creates a Templater.
func New(ix *catalog.Index, m DishMatcher, info Info) *Templater {
	return &Templater{ix: ix, m: m, info: info}
}

// Render produces the reply for intent given the user's original text.
func (t *Templater) Render(intent model.Intent, text string) Reply {
	q := textnorm.Normalize(text)

	switch intent {
	case model.IntentOpeningHours:
		return plain(t.hours(q))
	case model.IntentLocationParking:
		return plain(t.info.Location)
	case model.IntentPaymentMethods:
		return plain(t.info.Payment)
	case model.IntentDeliveryInfo:
		return plain(t.info.Delivery)
	case model.IntentTakeawayInfo:
		return plain(t.info.Takeaway)
	case model.IntentMenuItems:
		return plain(t.menu(q))
	case model.IntentDietaryOptions:
		return plain(t.dietary(q))
	case model.IntentDishQuery:
		return plain(t.dish(q))
	case model.IntentPriceQuery:
		return t.price(q)
	case model.IntentMakeReservation:
		return Reply{Text: TextMakeReservation, Signal: SignalAwaitPartySize}
	case model.IntentModifyReservation:
		return plain(TextModifyReservation)
	case model.IntentCancelReservation:
		return plain(TextCancelReservation)
	case model.IntentGreet:
		return plain(TextGreet)
	case model.IntentGoodbye:
		return plain(TextGoodbye)
	default:
		return plain(TextFallback)
	}
}

// PartyCaptured acknowledges a party size and asks for the time.
func PartyCaptured(party string) Reply {
	return plain(fmt.Sprintf(textPartyCaptured, party))
}

// Confirmed confirms a completed reservation.
func Confirmed(party, when string) Reply {
	return plain(fmt.Sprintf(textConfirmed, party, when))
}

// Empty is the reply to blank input.
func Empty() Reply {
	return plain(TextEmptyInput)
}

func plain(text string) Reply {
	return Reply{Text: text}
}

func (t *Templater) hours(q string) string {
	if reClosing.MatchString(q) {
		return fmt.Sprintf("We close at %s. Last order is %s.", t.info.CloseTime, t.info.LastOrder)
	}
	return fmt.Sprintf("We’re %s from %s to %s.", t.info.OpenDays, t.info.OpenTime, t.info.CloseTime)
}

func (t *Templater) join(entries []catalog.Entry, sep string) string {
	return strings.Join(t.ix.Labels(entries), sep)
}

func head(entries []catalog.Entry, n int) []catalog.Entry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
