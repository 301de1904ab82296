package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const retryEvery = 50 * time.Millisecond

// Redis is a Locker shared by every API instance pointing at the same server.
// The TTL bounds how long a crashed holder can block a barber's bookings.
type Redis struct {
	client redis.Cmdable
	ttl    time.Duration
	log    *slog.Logger
}

func NewRedis(client redis.Cmdable, ttl time.Duration, log *slog.Logger) *Redis {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &Redis{client: client, ttl: ttl, log: log}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ticker := time.NewTicker(retryEvery)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("lock %s: %w", key, ctx.Err())
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// the caller's ctx may already be cancelled
			if err := releaseScript.Run(context.Background(), r.client, []string{key}, token).Err(); err != nil {
				r.log.Warn("booking lock release failed", "key", key, "error", err)
			}
		})
	}, nil
}

var _ Locker = (*Redis)(nil)
