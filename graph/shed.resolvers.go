package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.41

import (
	"context"

	"github.com/mmdatafocus/grange_backend/models"
	"github.com/mmdatafocus/grange_backend/utils"
)

// AddShed is the resolver for the addShed field.
func (r *mutationResolver) AddShed(ctx context.Context, shed models.ShedInput) (*models.Shed, error) {
	return r.Store.Sheds.Add(ctx, &shed)
}

// UpdateShed is the resolver for the updateShed field.
func (r *mutationResolver) UpdateShed(ctx context.Context, idShed int, update models.ShedUpdate) (*models.Shed, error) {
	return r.Store.Sheds.Update(ctx, idShed, &update)
}

// DeleteShed is the resolver for the deleteShed field.
func (r *mutationResolver) DeleteShed(ctx context.Context, idShed int) (*bool, error) {
	return boolResult(r.Store.Sheds.Delete(ctx, idShed))
}

// ActivateShed is the resolver for the activateShed field.
func (r *mutationResolver) ActivateShed(ctx context.Context, idShed int) (*bool, error) {
	return boolResult(r.Store.Sheds.Activate(ctx, idShed))
}

// DeactivateShed is the resolver for the deactivateShed field.
func (r *mutationResolver) DeactivateShed(ctx context.Context, idShed int) (*bool, error) {
	return boolResult(r.Store.Sheds.Deactivate(ctx, idShed))
}

// RecountShed is the resolver for the recountShed field.
func (r *mutationResolver) RecountShed(ctx context.Context, idShed int) (*models.Shed, error) {
	ctx, span := r.span(ctx, "recountShed")
	defer span.End()
	return r.Store.Sheds.Recount(ctx, idShed)
}

// Sheds is the resolver for the sheds field.
func (r *queryResolver) Sheds(ctx context.Context, skip *int, limit *int, filter bool) (*models.ShedPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "sheds"); err != nil {
		return nil, err
	}
	return r.Store.Sheds.List(ctx, filter, utils.NormalizePage(skip, limit))
}

// ShedByID is the resolver for the shedById field.
func (r *queryResolver) ShedByID(ctx context.Context, idShed int) (*models.Shed, error) {
	shed, err := r.Store.Sheds.ByID(ctx, idShed)
	if err != nil {
		return nil, err
	}
	return scoped(ctx, r.Store, "shed", shed, shed.Active)
}

// ShedsStatistics is the resolver for the shedsStatistics field.
func (r *queryResolver) ShedsStatistics(ctx context.Context) ([]*models.ShedsStatistics, error) {
	if err := r.Store.CheckReportAccess(ctx); err != nil {
		return nil, err
	}
	return r.Store.Sheds.Statistics(ctx)
}

// Pools is the resolver for the pools field.
func (r *shedResolver) Pools(ctx context.Context, obj *models.Shed, skip *int, limit *int, filter bool) (*models.PoolPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "pools"); err != nil {
		return nil, err
	}
	return r.Store.Pools.ByShed(ctx, obj.ID, filter, utils.NormalizePage(skip, limit))
}

// Shed returns ShedResolver implementation.
func (r *Resolver) Shed() ShedResolver { return &shedResolver{r} }

type shedResolver struct{ *Resolver }
