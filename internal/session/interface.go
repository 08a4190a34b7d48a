// Package session stores per-client conversation state.
package session

import (
	"context"

	"restaurant-bot/internal/model"
)

// Store is a concurrency-safe table of sessions keyed by client identity.
// Sessions are values: callers get a copy and write it back with Save.
type Store interface {
	// Get returns the session for clientID, creating an idle one if absent.
	Get(ctx context.Context, clientID string) (model.Session, error)
	Save(ctx context.Context, s model.Session) error
	Delete(ctx context.Context, clientID string) error
}
