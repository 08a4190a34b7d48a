package model

// ReservationStage is the slot-filling stage of a pending reservation.
type ReservationStage string

const (
	StageAwaitingParty ReservationStage = "awaiting_party"
	StageAwaitingTime  ReservationStage = "awaiting_time"
)

// PendingReservation holds the slots collected so far.
type PendingReservation struct {
	Stage ReservationStage `json:"stage"`
	Party string           `json:"party,omitempty"`
}

// Session is the per-client conversation state. It lives only as long as
// the session store keeps it.
type Session struct {
	ClientID           string              `json:"client_id"`
	Reservation        *PendingReservation `json:"reservation,omitempty"`
	ExpectingPriceItem bool                `json:"expecting_price_item,omitempty"`
	PreferredAlgo      string              `json:"preferred_algo,omitempty"`
}

// NewSession returns an idle session for clientID.
func NewSession(clientID string) Session {
	return Session{ClientID: clientID}
}

// Idle reports whether no reservation is pending.
func (s Session) Idle() bool {
	return s.Reservation == nil
}

// ClearReservation drops every reservation slot.
func (s *Session) ClearReservation() {
	s.Reservation = nil
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	out := s
	if s.Reservation != nil {
		r := *s.Reservation
		out.Reservation = &r
	}
	return out
}
