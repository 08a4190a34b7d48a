package session

import (
	"context"
	"fmt"
	"time"
)

// Options selects and configures a store driver.
type Options struct {
	Driver string
	Size   int
	TTL    time.Duration
	Redis  RedisConfig
}

// New builds the store named by opt.Driver. An empty driver means memory.
func New(ctx context.Context, opt Options) (Store, error) {
	switch opt.Driver {
	case "", DriverMemory:
		return NewMemoryStore(opt.Size, opt.TTL), nil
	case DriverRedis:
		st, err := NewRedisStore(ctx, opt.Redis, opt.TTL)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opt.Driver)
	}
}
