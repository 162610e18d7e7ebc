// Package redisx holds the Redis client helpers. The expiry sweep runs
// on a schedule in every API replica; the lock here makes sure only one
// replica sweeps per tick.
package redisx

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// New builds a Redis client for the given address.
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// releaseScript deletes the key only while it still holds our token, so
// a lock that expired and was re-acquired elsewhere is never released by
// the old holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Lock is a single-holder TTL lock.
type Lock struct {
	client *redis.Client
	key    string
	token  string
}

// NewLock builds a lock on the given key.
func NewLock(client *redis.Client, key string) *Lock {
	return &Lock{client: client, key: key}
}

// Acquire tries to take the lock for ttl. Returns false when another
// holder has it.
func (l *Lock) Acquire(ctx context.Context, ttl time.Duration) (bool, error) {
	token := uuid.New().String()
	ok, err := l.client.SetNX(ctx, l.key, token, ttl).Result()
	if err != nil {
		return false, err
	}
	if ok {
		l.token = token
	}
	return ok, nil
}

// Release gives the lock back if we still hold it.
func (l *Lock) Release(ctx context.Context) error {
	if l.token == "" {
		return nil
	}
	err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Err()
	l.token = ""
	if err == redis.Nil {
		return nil
	}
	return err
}
