package models

import (
	"context"
	"sort"
	"time"

	"github.com/mmdatafocus/grange_backend/cache"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	defaultPermissionTTL = 900 * time.Second
	entityCacheTTL       = 10 * time.Minute
	shedLockTTL          = 10 * time.Second
)

type StoreOptions struct {
	DB            *gorm.DB
	Cache         *cache.Client
	Logger        *logrus.Logger
	Events        config.EventPublisher
	Metrics       *config.Metrics
	Tokens        *utils.TokenIssuer
	PermissionTTL time.Duration
	PhoneRegion   string
}

// Store owns the database and cache handles and exposes one accessor per entity.
type Store struct {
	db            *gorm.DB
	cache         *cache.Client
	logger        *logrus.Logger
	events        config.EventPublisher
	metrics       *config.Metrics
	tokens        *utils.TokenIssuer
	tracer        trace.Tracer
	permissionTTL time.Duration
	phoneRegion   string

	Users         *UserStore
	Roles         *RoleStore
	Operations    *OperationStore
	Permissions   *PermissionStore
	Sheds         *ShedStore
	Pools         *PoolStore
	Cuys          *CuyStore
	Mobilizations *MobilizationStore
}

func NewStore(opts StoreOptions) *Store {
	s := &Store{
		db:            opts.DB,
		cache:         opts.Cache,
		logger:        opts.Logger,
		events:        opts.Events,
		metrics:       opts.Metrics,
		tokens:        opts.Tokens,
		tracer:        otel.Tracer("grange-models"),
		permissionTTL: opts.PermissionTTL,
		phoneRegion:   opts.PhoneRegion,
	}
	if s.logger == nil {
		s.logger = logrus.New()
	}
	if s.events == nil {
		s.events = config.NopPublisher{}
	}
	if s.metrics == nil {
		s.metrics = config.NewMetrics(nil)
	}
	if s.permissionTTL <= 0 {
		s.permissionTTL = defaultPermissionTTL
	}
	s.Users = &UserStore{s}
	s.Roles = &RoleStore{s}
	s.Operations = &OperationStore{s}
	s.Permissions = &PermissionStore{s}
	s.Sheds = &ShedStore{s}
	s.Pools = &PoolStore{s}
	s.Cuys = &CuyStore{s}
	s.Mobilizations = &MobilizationStore{s}
	return s
}

func (s *Store) DB() *gorm.DB           { return s.db }
func (s *Store) Cache() *cache.Client   { return s.cache }
func (s *Store) Logger() *logrus.Logger { return s.logger }

func (s *Store) logError(funcName string, context string, data interface{}, err error) {
	config.LogError(s.logger, "models", funcName, context, data, err)
}

// mutation collects what a committed write must do afterwards.
type mutation struct {
	keys   []string
	events []config.DomainEvent
}

func (m *mutation) invalidate(objs ...RedisCleaner) {
	for _, o := range objs {
		m.keys = append(m.keys, o.RedisKeys()...)
	}
}

func (m *mutation) invalidateKeys(keys ...string) {
	m.keys = append(m.keys, keys...)
}

func (m *mutation) publish(ev config.DomainEvent) {
	m.events = append(m.events, ev)
}

// mutate runs fn in one transaction under best-effort shed locks, then drops
// stale cache entries and publishes the collected events.
func (s *Store) mutate(ctx context.Context, funcName string, shedIds []int, fn func(tx *gorm.DB, m *mutation) error) error {
	ctx, span := s.tracer.Start(ctx, funcName)
	defer span.End()

	release := s.lockSheds(ctx, shedIds)
	defer release()

	var m mutation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx, &m)
	})
	if err != nil {
		if utils.KindOf(err) == utils.KindInternal {
			err = utils.WrapInternal(err, "%s transaction", funcName)
			operation, _ := utils.GetOperationNameFromContext(ctx)
			s.logError(funcName, "transaction", map[string]interface{}{"shed_ids": shedIds, "operation": operation}, err)
			span.RecordError(err)
		}
		return err
	}

	if s.cache != nil && len(m.keys) > 0 {
		if err := s.cache.Delete(ctx, utils.UniqueSlice(m.keys)...); err != nil {
			s.logError(funcName, "invalidate cache", m.keys, err)
		}
	}
	userId, _ := utils.GetUserIdFromContext(ctx)
	correlationId, _ := utils.GetCorrelationIdFromContext(ctx)
	operation, _ := utils.GetOperationNameFromContext(ctx)
	for _, ev := range m.events {
		ev.Operation = operation
		if ev.UserId == 0 {
			ev.UserId = userId
		}
		ev.CorrelationId = correlationId
		if ev.OccurredAt.IsZero() {
			ev.OccurredAt = time.Now().UTC()
		}
		if err := s.events.Publish(ctx, ev); err != nil {
			s.logError(funcName, "publish event", ev, err)
		}
	}
	return nil
}

func (s *Store) lockSheds(ctx context.Context, shedIds []int) func() {
	if s.cache == nil || len(shedIds) == 0 {
		return func() {}
	}
	ids := utils.UniqueSlice(shedIds)
	sort.Ints(ids)

	var release []func()
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		lock, err := s.cache.Obtain(ctx, cache.Key("lock:shed", id), shedLockTTL)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"module":  "models",
				"shed_id": id,
			}).Warn("shed lock not obtained, continuing without it")
			continue
		}
		release = append(release, func() { _ = lock.Release(context.Background()) })
	}
	return func() {
		for i := len(release) - 1; i >= 0; i-- {
			release[i]()
		}
	}
}
