package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-bot/internal/model"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return newRedisStore(client, "", ttl), mr
}

// storeContract runs the behaviour every driver must share.
func storeContract(t *testing.T, st Store) {
	ctx := context.Background()

	t.Run("lazy creation", func(t *testing.T) {
		s, err := st.Get(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, model.NewSession("alice"), s)
	})

	t.Run("save and reload", func(t *testing.T) {
		s, err := st.Get(ctx, "bob")
		require.NoError(t, err)
		s.Reservation = &model.PendingReservation{Stage: model.StageAwaitingTime, Party: "4"}
		s.PreferredAlgo = "nb"
		require.NoError(t, st.Save(ctx, s))

		got, err := st.Get(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	})

	t.Run("copies are isolated", func(t *testing.T) {
		s, err := st.Get(ctx, "carol")
		require.NoError(t, err)
		s.Reservation = &model.PendingReservation{Stage: model.StageAwaitingParty}
		require.NoError(t, st.Save(ctx, s))

		s.Reservation.Stage = model.StageAwaitingTime

		got, err := st.Get(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, model.StageAwaitingParty, got.Reservation.Stage)
	})

	t.Run("delete", func(t *testing.T) {
		s, _ := st.Get(ctx, "dave")
		s.ExpectingPriceItem = true
		require.NoError(t, st.Save(ctx, s))
		require.NoError(t, st.Delete(ctx, "dave"))

		got, err := st.Get(ctx, "dave")
		require.NoError(t, err)
		assert.False(t, got.ExpectingPriceItem)
	})

	t.Run("empty client id", func(t *testing.T) {
		_, err := st.Get(ctx, "")
		assert.ErrorIs(t, err, ErrEmptyClientID)
		assert.ErrorIs(t, st.Save(ctx, model.Session{}), ErrEmptyClientID)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore(0, 0))
}

func TestRedisStore(t *testing.T) {
	st, _ := newTestRedisStore(t, time.Hour)
	storeContract(t, st)
}

func TestMemoryStore_Eviction(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(2, 0)

	for _, id := range []string{"a", "b", "c"} {
		_, err := st.Get(ctx, id)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, st.Len())
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(0, 20*time.Millisecond)

	s, _ := st.Get(ctx, "a")
	s.ExpectingPriceItem = true
	require.NoError(t, st.Save(ctx, s))

	time.Sleep(60 * time.Millisecond)

	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, got.ExpectingPriceItem)
}

func TestMemoryStore_ConcurrentClients(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(0, 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("client-%d", i%10)
			s, err := st.Get(ctx, id)
			if err != nil {
				t.Error(err)
				return
			}
			s.PreferredAlgo = "svm"
			if err := st.Save(ctx, s); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, st.Len())
}

func TestRedisStore_TTLAndPrefix(t *testing.T) {
	ctx := context.Background()
	st, mr := newTestRedisStore(t, time.Minute)

	_, err := st.Get(ctx, "alice")
	require.NoError(t, err)

	key := defaultRedisPrefix + "alice"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(key))
}

func TestRedisStore_Errors(t *testing.T) {
	ctx := context.Background()
	st, mr := newTestRedisStore(t, 0)

	require.NoError(t, mr.Set(defaultRedisPrefix+"broken", "{not json"))
	_, err := st.Get(ctx, "broken")
	assert.Error(t, err)

	down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer down.Close()
	_, err = newRedisStore(down, "", 0).Get(ctx, "alice")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	st, err := New(context.Background(), Options{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, st)

	_, err = New(context.Background(), Options{Driver: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
