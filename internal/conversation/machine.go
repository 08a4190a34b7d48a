// Package conversation holds the per-session multi-turn flows: reservation
// slot filling and the one-shot price item follow-up.
package conversation

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"restaurant-bot/internal/model"
	"restaurant-bot/internal/reply"
	"restaurant-bot/pkg/textnorm"
)

var transitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "restaurant_bot",
	Subsystem: "conversation",
	Name:      "transitions_total",
	Help:      "Conversation state transitions",
}, []string{"transition"})

// Machine advances a session's conversation state. It keeps no state of its
// own; everything lives on the session passed in.
type Machine struct{}

// New creates a Machine.
func New() *Machine {
	return &Machine{}
}

// Intercept handles text when the session has a pending flow. A pending
// reservation always takes precedence over the price follow-up.
func (m *Machine) Intercept(s *model.Session, text string) (Turn, bool) {
	if r := s.Reservation; r != nil {
		switch r.Stage {
		case model.StageAwaitingParty:
			party, ok := textnorm.FirstInteger(text)
			if !ok {
				party = strings.TrimSpace(text)
			}
			s.Reservation = &model.PendingReservation{Stage: model.StageAwaitingTime, Party: party}
			transitions.WithLabelValues("party_captured").Inc()
			rep := reply.PartyCaptured(party)
			return reservationTurn(rep), true

		case model.StageAwaitingTime:
			party := r.Party
			s.ClearReservation()
			transitions.WithLabelValues("reservation_confirmed").Inc()
			rep := reply.Confirmed(party, strings.TrimSpace(text))
			return reservationTurn(rep), true

		default:
			// Unknown stage from an older store; drop it and route normally.
			s.ClearReservation()
		}
	}

	if s.ExpectingPriceItem {
		s.ExpectingPriceItem = false
		transitions.WithLabelValues("price_followup").Inc()
		return Turn{
			Source:     SourcePriceFollowUp,
			Intent:     model.IntentPriceQuery,
			Confidence: Confidence,
		}, true
	}

	return Turn{}, false
}

// Apply records the follow-up a rendered reply asked for. forced is true when
// the reply answered a price follow-up, which never re-arms the flag.
func (m *Machine) Apply(s *model.Session, sig reply.Signal, forced bool) {
	switch sig {
	case reply.SignalAwaitPartySize:
		s.Reservation = &model.PendingReservation{Stage: model.StageAwaitingParty}
		s.ExpectingPriceItem = false
		transitions.WithLabelValues("awaiting_party").Inc()
	case reply.SignalAwaitPriceItem:
		if forced || !s.Idle() {
			return
		}
		s.ExpectingPriceItem = true
		transitions.WithLabelValues("expecting_price_item").Inc()
	}
}

func reservationTurn(rep reply.Reply) Turn {
	return Turn{
		Source:     SourceReservation,
		Intent:     model.IntentMakeReservation,
		Confidence: Confidence,
		Reply:      &rep,
	}
}
