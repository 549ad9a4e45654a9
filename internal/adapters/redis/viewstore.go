package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"valk_landing/internal/adapters/observability"
	"valk_landing/internal/domain"
)

const keyPrefix = "landing:view:"

// ViewStore keeps page view state in Redis as JSON with a TTL.
type ViewStore struct{ c *redis.Client }

func New(addr, pass string, db int) *ViewStore {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}))
}

func NewWithClient(c *redis.Client) *ViewStore { return &ViewStore{c: c} }

func (s *ViewStore) Ping(ctx context.Context) error { return s.c.Ping(ctx).Err() }

func (s *ViewStore) Close() error { return s.c.Close() }

func (s *ViewStore) Load(ctx context.Context, id string) (domain.ViewState, error) {
	v, err := s.c.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		observability.ObserveStore("redis", "miss")
		return domain.ViewState{}, domain.ErrViewNotFound
	}
	if err != nil {
		return domain.ViewState{}, err
	}
	observability.ObserveStore("redis", "hit")
	var st domain.ViewState
	return st, json.Unmarshal(v, &st)
}

func (s *ViewStore) Save(ctx context.Context, st domain.ViewState, ttl time.Duration) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	observability.ObserveStore("redis", "set")
	return s.c.Set(ctx, keyPrefix+st.ID, b, ttl).Err()
}

func (s *ViewStore) Delete(ctx context.Context, id string) error {
	observability.ObserveStore("redis", "del")
	return s.c.Del(ctx, keyPrefix+id).Err()
}
