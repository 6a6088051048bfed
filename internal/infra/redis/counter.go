package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "crm:counter:"

type incrementer interface {
	Incr(ctx context.Context, key string) *goredis.IntCmd
}

// CounterStore keeps counters as plain integer keys. INCR is atomic and
// creates a missing key at zero before incrementing.
type CounterStore struct {
	client    incrementer
	keyPrefix string
}

func NewClient(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return goredis.NewClient(opts), nil
}

func NewCounterStore(client *goredis.Client, keyPrefix string) *CounterStore {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &CounterStore{client: client, keyPrefix: keyPrefix}
}

func (s *CounterStore) NextValue(ctx context.Context, name string) (int64, error) {
	v, err := s.client.Incr(ctx, s.keyPrefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", name, err)
	}
	return v, nil
}
