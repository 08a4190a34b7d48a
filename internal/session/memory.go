package session

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"restaurant-bot/internal/model"
)

const DriverMemory = "memory"

// MemoryStore keeps sessions in process memory. The least recently used
// session is evicted past size, and a session untouched for ttl expires.
type MemoryStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, model.Session]
}

// NewMemoryStore creates a store. size 0 means unbounded and ttl 0 means
// sessions never expire.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: expirable.NewLRU[string, model.Session](size, nil, ttl),
	}
}

func (s *MemoryStore) Get(ctx context.Context, clientID string) (model.Session, error) {
	if clientID == "" {
		return model.Session{}, ErrEmptyClientID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.cache.Get(clientID); ok {
		return sess.Clone(), nil
	}
	sess := model.NewSession(clientID)
	s.cache.Add(clientID, sess)
	sessionsCreated.WithLabelValues(DriverMemory).Inc()
	return sess.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, sess model.Session) error {
	if sess.ClientID == "" {
		return ErrEmptyClientID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Add(sess.ClientID, sess.Clone())
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Remove(clientID)
	return nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	return s.cache.Len()
}
