package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mmdatafocus/grange_backend/cache"
	"github.com/mmdatafocus/grange_backend/testsupport"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

func newClient(t *testing.T) *cache.Client {
	t.Helper()
	testsupport.RequireIntegration(t)
	addr := testsupport.StartRedis(t)
	c := cache.New(redis.NewClient(&redis.Options{Addr: addr}))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestKey(t *testing.T) {
	assert.Equal(t, "Shed:12", cache.Key("Shed", 12))
}

func TestCachePrimitives(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	var got sample
	ok, err := c.GetObject(ctx, "Sample:1", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetObject(ctx, "Sample:1", sample{Id: 1, Name: "one"}, 0))
	ok, err = c.GetObject(ctx, "Sample:1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sample{Id: 1, Name: "one"}, got)

	require.NoError(t, c.SetValue(ctx, "Operation:sheds", "4", 0))
	v, ok, err := c.GetValue(ctx, "Operation:sheds")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	n, err := c.Incr(ctx, "rate:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = c.Incr(ctx, "rate:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDeletePrefixLeavesOtherUsers(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	for _, k := range []string{"7_operation", "7_token_10.0.0.1", "7_token_10.0.0.2", "70_operation"} {
		require.NoError(t, c.SetValue(ctx, k, "x", 0))
	}
	require.NoError(t, c.DeletePrefix(ctx, "7_"))

	for _, k := range []string{"7_operation", "7_token_10.0.0.1", "7_token_10.0.0.2"} {
		exists, err := c.Exists(ctx, k)
		require.NoError(t, err)
		assert.False(t, exists, k)
	}
	exists, err := c.Exists(ctx, "70_operation")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetOrFetchSharesConcurrentMisses(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	var calls int32
	fetch := func(context.Context) (*sample, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(200 * time.Millisecond)
		return &sample{Id: 3, Name: "three"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := cache.GetOrFetch(ctx, c, "Sample:3", time.Minute, fetch)
			assert.NoError(t, err)
			assert.Equal(t, "three", s.Name)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// Served from redis now.
	s, err := cache.GetOrFetch(ctx, c, "Sample:3", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Id)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrFetchPropagatesFetchError(t *testing.T) {
	boom := errors.New("boom")
	_, err := cache.GetOrFetch(context.Background(), nil, "Sample:9", time.Minute, func(context.Context) (*sample, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestObtainSerializesHolders(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	lock, err := c.Obtain(ctx, "lock:shed:1", time.Second)
	require.NoError(t, err)

	released := make(chan struct{})
	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = lock.Release(ctx)
		close(released)
	}()

	second, err := c.Obtain(ctx, "lock:shed:1", time.Second)
	require.NoError(t, err)
	<-released
	require.NoError(t, second.Release(ctx))
}

func TestGetOrFetchGivesWaitersTheirOwnCopy(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	fetch := func(context.Context) (*sample, error) {
		time.Sleep(200 * time.Millisecond)
		return &sample{Id: 4, Name: "four"}, nil
	}
	results := make([]*sample, 4)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := cache.GetOrFetch(ctx, c, "Sample:4", time.Minute, fetch)
			assert.NoError(t, err)
			results[i] = s
		}(i)
	}
	wg.Wait()

	results[0].Name = "changed"
	for _, s := range results[1:] {
		require.NotNil(t, s)
		assert.Equal(t, "four", s.Name)
	}
}

func TestVersionedSet(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	t.Run("add to a missing set leaves no key", func(t *testing.T) {
		present, err := c.SetAddIfExists(ctx, "8_operation", "8_operation_version", time.Minute, 5)
		require.NoError(t, err)
		assert.False(t, present)
		exists, err := c.Exists(ctx, "8_operation")
		require.NoError(t, err)
		assert.False(t, exists)

		v, err := c.SetVersion(ctx, "8_operation_version")
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)
	})

	t.Run("replace honours the version", func(t *testing.T) {
		v, err := c.SetVersion(ctx, "9_operation_version")
		require.NoError(t, err)
		assert.Zero(t, v)

		saved, err := c.SetReplaceIfVersion(ctx, "9_operation", "9_operation_version", v, time.Minute, 1, 2)
		require.NoError(t, err)
		assert.True(t, saved)
		ttl, err := c.Redis().TTL(ctx, "9_operation").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))

		present, err := c.SetAddIfExists(ctx, "9_operation", "9_operation_version", time.Minute, 3)
		require.NoError(t, err)
		assert.True(t, present)
		ttl, err = c.Redis().TTL(ctx, "9_operation").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))

		saved, err = c.SetReplaceIfVersion(ctx, "9_operation", "9_operation_version", v, time.Minute, 1)
		require.NoError(t, err)
		assert.False(t, saved)
		members, err := c.SetMembers(ctx, "9_operation")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"1", "2", "3"}, members)

		require.NoError(t, c.SetRemoveVersioned(ctx, "9_operation", "9_operation_version", time.Minute, 2))
		members, err = c.SetMembers(ctx, "9_operation")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"1", "3"}, members)

		require.NoError(t, c.DeleteVersioned(ctx, "9_operation", "9_operation_version", time.Minute))
		exists, err := c.Exists(ctx, "9_operation")
		require.NoError(t, err)
		assert.False(t, exists)
		v, err = c.SetVersion(ctx, "9_operation_version")
		require.NoError(t, err)
		assert.Equal(t, int64(3), v)
	})
}
