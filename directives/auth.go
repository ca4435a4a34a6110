package directives

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/sirupsen/logrus"
)

// PermissionSource resolves operation ids and the operation set a user may run.
type PermissionSource interface {
	OperationId(ctx context.Context, name string) (int, error)
	// Cached returns the warm set of the user; empty means not cached.
	Cached(ctx context.Context, userId int) ([]int, error)
	// Version identifies the cached set; Save skips the write once it moved.
	Version(ctx context.Context, userId int) (int64, error)
	// Compute returns the number of roles of the user and the operations they grant.
	Compute(ctx context.Context, userId int) (int, []int, error)
	Save(ctx context.Context, userId int, version int64, operationIds []int) error
}

type Authorizer struct {
	source  PermissionSource
	metrics *config.Metrics
	logger  *logrus.Logger
}

func NewAuthorizer(source PermissionSource, metrics *config.Metrics, logger *logrus.Logger) *Authorizer {
	if metrics == nil {
		metrics = config.NewMetrics(nil)
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Authorizer{source: source, metrics: metrics, logger: logger}
}

// IsAuthenticated is the @isAuthenticated directive. The operation checked is
// the schema name of the guarded field.
func (a *Authorizer) IsAuthenticated(ctx context.Context, obj interface{}, next graphql.Resolver) (interface{}, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		a.decision("deny")
		return nil, utils.ErrUnauthenticated("You are not authenticated")
	}
	var operation string
	if fc := graphql.GetFieldContext(ctx); fc != nil && fc.Field.Field != nil {
		operation = fc.Field.Name
	}
	if err := a.Authorize(ctx, userId, operation); err != nil {
		return nil, err
	}
	return next(utils.SetOperationNameInContext(ctx, operation))
}

// Authorize decides whether userId may run operation. A warm permission set
// is used as is; a cold one is computed from the user's roles, cached and
// checked directly.
func (a *Authorizer) Authorize(ctx context.Context, userId int, operation string) error {
	allowed, err := a.source.Cached(ctx, userId)
	if err != nil {
		config.LogError(a.logger, "directives", "Authorize", "cached permissions", userId, err)
		return err
	}
	if len(allowed) > 0 {
		a.metrics.PermissionCache.WithLabelValues("hit").Inc()
	} else {
		a.metrics.PermissionCache.WithLabelValues("miss").Inc()
		version, err := a.source.Version(ctx, userId)
		if err != nil {
			config.LogError(a.logger, "directives", "Authorize", "permission version", userId, err)
			return err
		}
		roles, ops, err := a.source.Compute(ctx, userId)
		if err != nil {
			config.LogError(a.logger, "directives", "Authorize", "compute permissions", userId, err)
			return err
		}
		if roles == 0 {
			a.decision("deny")
			return utils.ErrUnauthenticated("Unauthenticated. User has no roles")
		}
		if len(ops) > 0 {
			if err := a.source.Save(ctx, userId, version, ops); err != nil {
				// the decision below uses the computed set
				config.LogError(a.logger, "directives", "Authorize", "save permissions", userId, err)
			}
		}
		allowed = ops
	}

	operationId, err := a.source.OperationId(ctx, operation)
	if err != nil {
		a.decision("deny")
		return err
	}
	for _, id := range allowed {
		if id == operationId {
			a.decision("allow")
			return nil
		}
	}
	a.decision("deny")
	return utils.ErrForbidden("Forbidden. You are not allowed to execute " + operation)
}

func (a *Authorizer) decision(d string) {
	a.metrics.AuthorizationDecisions.WithLabelValues(d).Inc()
}
