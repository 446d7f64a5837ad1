package dedup

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 24 * time.Hour
	keyPrefix  = "gittales:delivery:"
)

// Redis shares claimed delivery IDs across server instances
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ interfaces.DeliveryGuard = (*Redis)(nil)

func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func (x *Redis) Claim(ctx context.Context, id string) (bool, error) {
	ok, err := x.client.SetNX(ctx, keyPrefix+id, logging.CtxTime(ctx).Unix(), x.ttl).Result()
	if err != nil {
		return false, goerr.Wrap(err, "failed to claim delivery", goerr.V("delivery_id", id))
	}
	return ok, nil
}

func (x *Redis) Release(ctx context.Context, id string) error {
	if err := x.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return goerr.Wrap(err, "failed to release delivery", goerr.V("delivery_id", id))
	}
	return nil
}

// Memory keeps claimed delivery IDs in process. Expired claims are swept on
// each Claim.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	claimed map[string]time.Time
}

var _ interfaces.DeliveryGuard = (*Memory)(nil)

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		claimed: make(map[string]time.Time),
	}
}

func (x *Memory) Claim(ctx context.Context, id string) (bool, error) {
	now := logging.CtxTime(ctx)

	x.mu.Lock()
	defer x.mu.Unlock()

	for k, expiresAt := range x.claimed {
		if !now.Before(expiresAt) {
			delete(x.claimed, k)
		}
	}

	if _, ok := x.claimed[id]; ok {
		return false, nil
	}
	x.claimed[id] = now.Add(x.ttl)
	return true, nil
}

func (x *Memory) Release(ctx context.Context, id string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.claimed, id)
	return nil
}
