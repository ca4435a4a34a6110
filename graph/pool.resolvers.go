package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.41

import (
	"context"

	"github.com/mmdatafocus/grange_backend/middlewares"
	"github.com/mmdatafocus/grange_backend/models"
	"github.com/mmdatafocus/grange_backend/utils"
)

// AddPool is the resolver for the addPool field.
func (r *mutationResolver) AddPool(ctx context.Context, pool models.PoolInput) (*models.Pool, error) {
	return r.Store.Pools.Add(ctx, &pool)
}

// UpdatePool is the resolver for the updatePool field.
func (r *mutationResolver) UpdatePool(ctx context.Context, idPool int, update models.PoolUpdate) (*models.Pool, error) {
	return r.Store.Pools.Update(ctx, idPool, &update)
}

// DeletePool is the resolver for the deletePool field.
func (r *mutationResolver) DeletePool(ctx context.Context, idPool int) (*bool, error) {
	return boolResult(r.Store.Pools.Delete(ctx, idPool))
}

// ActivatePool is the resolver for the activatePool field.
func (r *mutationResolver) ActivatePool(ctx context.Context, idPool int) (*bool, error) {
	return boolResult(r.Store.Pools.Activate(ctx, idPool))
}

// DeactivatePool is the resolver for the deactivatePool field.
func (r *mutationResolver) DeactivatePool(ctx context.Context, idPool int) (*bool, error) {
	return boolResult(r.Store.Pools.Deactivate(ctx, idPool))
}

// Shed is the resolver for the shed field.
func (r *poolResolver) Shed(ctx context.Context, obj *models.Pool) (*models.Shed, error) {
	return middlewares.GetShed(ctx, obj.ShedId)
}

// Cuys is the resolver for the cuys field.
func (r *poolResolver) Cuys(ctx context.Context, obj *models.Pool, skip *int, limit *int, filter bool) (*models.CuyPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "cuys"); err != nil {
		return nil, err
	}
	return r.Store.Cuys.ByPool(ctx, obj.ID, filter, utils.NormalizePage(skip, limit))
}

// Pools is the resolver for the pools field.
func (r *queryResolver) Pools(ctx context.Context, skip *int, limit *int, filter bool) (*models.PoolPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "pools"); err != nil {
		return nil, err
	}
	return r.Store.Pools.List(ctx, filter, utils.NormalizePage(skip, limit))
}

// PoolByID is the resolver for the poolById field.
func (r *queryResolver) PoolByID(ctx context.Context, idPool int) (*models.Pool, error) {
	pool, err := r.Store.Pools.ByID(ctx, idPool)
	if err != nil {
		return nil, err
	}
	return scoped(ctx, r.Store, "pool", pool, pool.Active)
}

// PoolByCode is the resolver for the poolByCode field.
func (r *queryResolver) PoolByCode(ctx context.Context, code string) (*models.Pool, error) {
	pool, err := r.Store.Pools.ByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return scoped(ctx, r.Store, "pool", pool, pool.Active)
}

// PoolsByShed is the resolver for the poolsByShed field.
func (r *queryResolver) PoolsByShed(ctx context.Context, idShed int, skip *int, limit *int, filter bool) (*models.PoolPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "pools"); err != nil {
		return nil, err
	}
	return r.Store.Pools.ByShed(ctx, idShed, filter, utils.NormalizePage(skip, limit))
}

// PoolsByType is the resolver for the poolsByType field.
func (r *queryResolver) PoolsByType(ctx context.Context, idShed int, typeArg string, skip *int, limit *int, filter bool) (*models.PoolPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "pools"); err != nil {
		return nil, err
	}
	return r.Store.Pools.ByType(ctx, idShed, typeArg, filter, utils.NormalizePage(skip, limit))
}

// PoolsByPhase is the resolver for the poolsByPhase field.
func (r *queryResolver) PoolsByPhase(ctx context.Context, idShed int, phase string, skip *int, limit *int, filter bool) (*models.PoolPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "pools"); err != nil {
		return nil, err
	}
	return r.Store.Pools.ByPhase(ctx, idShed, phase, filter, utils.NormalizePage(skip, limit))
}

// Pool returns PoolResolver implementation.
func (r *Resolver) Pool() PoolResolver { return &poolResolver{r} }

type poolResolver struct{ *Resolver }
