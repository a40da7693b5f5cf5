package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ProviderLocker serializes the check-and-insert sequence per provider.
// Validating "no overlap" and then persisting is not atomic on its own; two
// concurrent callers could both pass the check. The lock closes that window:
// the validator verdict only counts while the caller holds the lock.
type ProviderLocker interface {
	Acquire(ctx context.Context, providerID string) (release func(), err error)
}

// RedisProviderLocker implements ProviderLocker with a SET NX lease keyed by
// provider id. Release is compare-and-delete so an expired lease can never
// delete a successor's lock.
type RedisProviderLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

const (
	lockKeyPrefix    = "booking:lock:"
	lockRetries      = 3
	lockRetryBackoff = 150 * time.Millisecond
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (l *RedisProviderLocker) Acquire(ctx context.Context, providerID string) (func(), error) {
	key := lockKeyPrefix + providerID
	token := uuid.New().String()
	ttl := l.TTL
	if ttl == 0 {
		ttl = 10 * time.Second
	}

	for attempt := 0; attempt < lockRetries; attempt++ {
		ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			release := func() {
				releaseScript.Run(context.Background(), l.Client, []string{key}, token)
			}
			return release, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryBackoff):
		}
	}
	return nil, ErrLockBusy
}
