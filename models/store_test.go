package models

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mmdatafocus/grange_backend/cache"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/testsupport"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []config.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, ev config.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) last(eventType string) (config.DomainEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.events) - 1; i >= 0; i-- {
		if p.events[i].Type == eventType {
			return p.events[i], true
		}
	}
	return config.DomainEvent{}, false
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

type testEnv struct {
	store  *Store
	events *recordingPublisher
	ctx    context.Context
	admin  *User
}

// newTestEnv starts mysql and redis containers, migrates and returns a store
// with a signed-in admin user in ctx.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	testsupport.RequireIntegration(t)

	redisAddr := testsupport.StartRedis(t)
	mysqlPort := testsupport.StartMySQL(t, "grange_test")

	logger := config.NewLogger("warn")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := config.ConnectDatabaseWithRetry(ctx, config.DatabaseConfig{
		User:     "root",
		Password: testsupport.MySQLPassword,
		Host:     "127.0.0.1",
		Port:     mysqlPort,
		Name:     "grange_test",
	}, logger)
	require.NoError(t, err)
	require.NoError(t, MigrateTable(db))

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	c := cache.New(rdb)
	t.Cleanup(func() { _ = c.Close() })

	events := &recordingPublisher{}
	store := NewStore(StoreOptions{
		DB:          db,
		Cache:       c,
		Logger:      logger,
		Events:      events,
		Metrics:     config.NewMetrics(prometheus.NewRegistry()),
		Tokens:      utils.NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour),
		PhoneRegion: "PE",
	})

	admin, err := store.Users.Signup(context.Background(), &UserInput{
		Names:     "Admin Grange",
		FirstName: "Admin",
		LastName:  "Grange",
		Email:     "admin@grange.test",
		Phone:     "987654321",
		Password:  "secret123",
	})
	require.NoError(t, err)

	ctx = utils.SetUserIdInContext(context.Background(), admin.ID)
	ctx = utils.SetClientIPInContext(ctx, "127.0.0.1")
	return &testEnv{store: store, events: events, ctx: ctx, admin: admin}
}

func (e *testEnv) shed(t *testing.T, id int) Shed {
	t.Helper()
	var shed Shed
	require.NoError(t, e.store.DB().First(&shed, id).Error)
	return shed
}

func (e *testEnv) pool(t *testing.T, id int) Pool {
	t.Helper()
	var pool Pool
	require.NoError(t, e.store.DB().First(&pool, id).Error)
	return pool
}

func (e *testEnv) addCuy(t *testing.T, poolId int, earring string, genre Genre) *Cuy {
	t.Helper()
	cuy, err := e.store.Cuys.Add(e.ctx, &CuyInput{
		Pool:         poolId,
		Earring:      earring,
		Race:         "PERU",
		Genre:        genre,
		Color:        "white",
		BirthdayDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return cuy
}

// assertConsistent checks the stored counters against a fresh recount.
func (e *testEnv) assertConsistent(t *testing.T, shedId int) {
	t.Helper()
	before := e.shed(t, shedId)
	var pools []Pool
	require.NoError(t, e.store.DB().Where("shed_id = ?", shedId).Find(&pools).Error)

	after, err := e.store.Sheds.Recount(e.ctx, shedId)
	require.NoError(t, err)
	require.Equal(t, before.TotalNumberCuys, after.TotalNumberCuys, "shed total drifted")
	require.Equal(t, before.MaleNumberCuys+before.FemaleNumberCuys+before.ChildrenNumberCuys, before.TotalNumberCuys)
	for _, p := range pools {
		fresh := e.pool(t, p.ID)
		require.Equal(t, p.TotalPopulation, fresh.TotalPopulation, "pool %s drifted", p.Code)
		require.Equal(t, p.MalePopulation+p.FemalePopulation+p.ChildrenPopulation, p.TotalPopulation)
	}
}
