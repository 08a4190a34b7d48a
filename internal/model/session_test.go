package model_test

import (
	"testing"

	"restaurant-bot/internal/model"
)

func TestSessionClone(t *testing.T) {
	s := model.NewSession("c1")
	if !s.Idle() {
		t.Fatalf("new session should be idle")
	}

	s.Reservation = &model.PendingReservation{Stage: model.StageAwaitingTime, Party: "4"}
	c := s.Clone()
	c.Reservation.Party = "6"

	if s.Reservation.Party != "4" {
		t.Errorf("clone shares reservation with original: %q", s.Reservation.Party)
	}

	c.ClearReservation()
	if !c.Idle() || s.Idle() {
		t.Errorf("ClearReservation should only affect the clone")
	}
}
