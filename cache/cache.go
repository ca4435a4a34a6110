// Package cache is the key-value layer over redis shared by the auth
// directive, the permission cache, token storage and entity lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const scanBatch = 200

type Client struct {
	rdb    redis.UniversalClient
	locker *redislock.Client
	group  singleflight.Group
}

func New(rdb redis.UniversalClient) *Client {
	return &Client{
		rdb:    rdb,
		locker: redislock.New(rdb),
	}
}

func (c *Client) Redis() redis.UniversalClient { return c.rdb }

func Key(typeName string, id int) string {
	return fmt.Sprintf("%s:%d", typeName, id)
}

// GetObject decodes the JSON stored at key into dest. It reports false on a miss.
func (c *Client) GetObject(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetObject stores value as JSON. A zero ttl means no expiry.
func (c *Client) SetObject(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

func (c *Client) GetValue(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (c *Client) SetValue(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// DeletePrefix removes every key starting with prefix using SCAN.
func (c *Client) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Incr increments key and starts its ttl window on the first hit.
func (c *Client) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 && ttl > 0 {
		if err := c.rdb.Expire(ctx, key, ttl).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *Client) SetMembers(ctx context.Context, key string) ([]string, error) {
	return c.rdb.SMembers(ctx, key).Result()
}

// Versioned sets pair a set with a counter key. Every patch bumps the counter
// so a replace computed against an older version is dropped.
var (
	setAddIfExistsScript = redis.NewScript(`
redis.call('INCR', KEYS[2])
redis.call('PEXPIRE', KEYS[2], ARGV[1])
if redis.call('EXISTS', KEYS[1]) == 1 then
	return redis.call('SADD', KEYS[1], unpack(ARGV, 2))
end
return -1`)

	setRemoveVersionedScript = redis.NewScript(`
redis.call('INCR', KEYS[2])
redis.call('PEXPIRE', KEYS[2], ARGV[1])
return redis.call('SREM', KEYS[1], unpack(ARGV, 2))`)

	setReplaceIfVersionScript = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('DEL', KEYS[1])
redis.call('SADD', KEYS[1], unpack(ARGV, 3))
if tonumber(ARGV[2]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 1`)
)

// SetVersion returns the counter guarding a versioned set; a missing counter is 0.
func (c *Client) SetVersion(ctx context.Context, versionKey string) (int64, error) {
	v, err := c.rdb.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// SetAddIfExists adds members only when the set at key already exists, so an
// expired set is never recreated without its ttl. It reports whether the set
// was present.
func (c *Client) SetAddIfExists(ctx context.Context, key string, versionKey string, versionTTL time.Duration, members ...any) (bool, error) {
	if len(members) == 0 {
		return false, nil
	}
	n, err := setAddIfExistsScript.Run(ctx, c.rdb, []string{key, versionKey}, versionArgs(versionTTL, members)...).Int64()
	if err != nil {
		return false, err
	}
	return n >= 0, nil
}

func (c *Client) SetRemoveVersioned(ctx context.Context, key string, versionKey string, versionTTL time.Duration, members ...any) error {
	if len(members) == 0 {
		return nil
	}
	return setRemoveVersionedScript.Run(ctx, c.rdb, []string{key, versionKey}, versionArgs(versionTTL, members)...).Err()
}

// SetReplaceIfVersion replaces the set at key only while the counter still
// holds version. It reports whether the set was written.
func (c *Client) SetReplaceIfVersion(ctx context.Context, key string, versionKey string, version int64, ttl time.Duration, members ...any) (bool, error) {
	if len(members) == 0 {
		return false, nil
	}
	args := append([]any{version, ttl.Milliseconds()}, members...)
	n, err := setReplaceIfVersionScript.Run(ctx, c.rdb, []string{key, versionKey}, args...).Int64()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// DeleteVersioned drops the set and bumps its counter in one transaction.
func (c *Client) DeleteVersioned(ctx context.Context, key string, versionKey string, versionTTL time.Duration) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.Incr(ctx, versionKey)
		pipe.PExpire(ctx, versionKey, versionTTL)
		return nil
	})
	return err
}

func versionArgs(ttl time.Duration, members []any) []any {
	return append([]any{ttl.Milliseconds()}, members...)
}

func (c *Client) Flush(ctx context.Context) error {
	return c.rdb.FlushDB(ctx).Err()
}

// Obtain takes a short redis lock, retrying for up to ~5s.
func (c *Client) Obtain(ctx context.Context, key string, ttl time.Duration) (*redislock.Lock, error) {
	return c.locker.Obtain(ctx, key, ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 50),
	})
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetOrFetch reads key, falling back to fetch on a miss and caching the
// result. Concurrent misses on the same key share one fetch. Cache failures
// degrade to a plain fetch.
func GetOrFetch[T any](ctx context.Context, c *Client, key string, ttl time.Duration, fetch func(context.Context) (*T, error)) (*T, error) {
	if c == nil {
		return fetch(ctx)
	}
	var cached T
	if ok, err := c.GetObject(ctx, key, &cached); err == nil && ok {
		return &cached, nil
	}
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		result, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		_ = c.SetObject(ctx, key, result, ttl)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	r, _ := v.(*T)
	if r == nil {
		return nil, nil
	}
	// waiters on the same key share the result; each gets its own copy
	out := *r
	return &out, nil
}
