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

// Pool is the resolver for the pool field.
func (r *cuyResolver) Pool(ctx context.Context, obj *models.Cuy) (*models.Pool, error) {
	return middlewares.GetPool(ctx, obj.PoolId)
}

// Weights is the resolver for the weights field.
func (r *cuyResolver) Weights(ctx context.Context, obj *models.Cuy) ([]*models.CuyWeight, error) {
	return middlewares.GetWeightsOfCuy(ctx, obj.ID)
}

// Death is the resolver for the death field.
func (r *cuyResolver) Death(ctx context.Context, obj *models.Cuy) (*models.CuyDeath, error) {
	if !obj.HasDeath {
		return nil, nil
	}
	return middlewares.GetDeathOfCuy(ctx, obj.ID)
}

// Saca is the resolver for the saca field.
func (r *cuyResolver) Saca(ctx context.Context, obj *models.Cuy) (*models.CuySaca, error) {
	if !obj.HasSaca {
		return nil, nil
	}
	return middlewares.GetSacaOfCuy(ctx, obj.ID)
}

// CertifiedBy is the resolver for the certified_by field.
func (r *deathResolver) CertifiedBy(ctx context.Context, obj *models.CuyDeath) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.CertifiedById)
}

// User is the resolver for the user field.
func (r *deathResolver) User(ctx context.Context, obj *models.CuyDeath) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.UserId)
}

// AddCuy is the resolver for the addCuy field.
func (r *mutationResolver) AddCuy(ctx context.Context, cuy models.CuyInput) (*models.Cuy, error) {
	ctx, span := r.span(ctx, "addCuy")
	defer span.End()
	return r.Store.Cuys.Add(ctx, &cuy)
}

// UpdateCuy is the resolver for the updateCuy field.
func (r *mutationResolver) UpdateCuy(ctx context.Context, idCuy int, update models.CuyUpdate) (*models.Cuy, error) {
	ctx, span := r.span(ctx, "updateCuy")
	defer span.End()
	return r.Store.Cuys.Update(ctx, idCuy, &update)
}

// DeleteCuy is the resolver for the deleteCuy field.
func (r *mutationResolver) DeleteCuy(ctx context.Context, idCuy int) (*bool, error) {
	return boolResult(r.Store.Cuys.Delete(ctx, idCuy))
}

// ActivateCuy is the resolver for the activateCuy field.
func (r *mutationResolver) ActivateCuy(ctx context.Context, idCuy int) (*bool, error) {
	return boolResult(r.Store.Cuys.Activate(ctx, idCuy))
}

// DeactivateCuy is the resolver for the deactivateCuy field.
func (r *mutationResolver) DeactivateCuy(ctx context.Context, idCuy int) (*bool, error) {
	return boolResult(r.Store.Cuys.Deactivate(ctx, idCuy))
}

// AddWeightToCuy is the resolver for the addWeightToCuy field.
func (r *mutationResolver) AddWeightToCuy(ctx context.Context, idCuy int, weight models.WeightInput) (*bool, error) {
	return boolResult(r.Store.Cuys.AddWeight(ctx, idCuy, &weight))
}

// UpdateWeightOfCuy is the resolver for the updateWeightOfCuy field.
func (r *mutationResolver) UpdateWeightOfCuy(ctx context.Context, idCuy int, idWeight int, update models.WeightUpdate) (*bool, error) {
	return boolResult(r.Store.Cuys.UpdateWeight(ctx, idCuy, idWeight, &update))
}

// RemoveWeightOfCuy is the resolver for the removeWeightOfCuy field.
func (r *mutationResolver) RemoveWeightOfCuy(ctx context.Context, idCuy int, idWeight int) (*bool, error) {
	return boolResult(r.Store.Cuys.RemoveWeight(ctx, idCuy, idWeight))
}

// RegisterSacaCuy is the resolver for the registerSacaCuy field.
func (r *mutationResolver) RegisterSacaCuy(ctx context.Context, idCuy int, saca models.RecordInput) (*bool, error) {
	return boolResult(r.Store.Cuys.RegisterSaca(ctx, idCuy, &saca))
}

// UpdateSacaCuy is the resolver for the updateSacaCuy field.
func (r *mutationResolver) UpdateSacaCuy(ctx context.Context, idCuy int, saca models.RecordUpdate) (*bool, error) {
	return boolResult(r.Store.Cuys.UpdateSaca(ctx, idCuy, &saca))
}

// RemoveSacaCuy is the resolver for the removeSacaCuy field.
func (r *mutationResolver) RemoveSacaCuy(ctx context.Context, idCuy int) (*bool, error) {
	return boolResult(r.Store.Cuys.RemoveSaca(ctx, idCuy))
}

// RegisterDeathCuy is the resolver for the registerDeathCuy field.
func (r *mutationResolver) RegisterDeathCuy(ctx context.Context, idCuy int, death models.RecordInput) (*bool, error) {
	return boolResult(r.Store.Cuys.RegisterDeath(ctx, idCuy, &death))
}

// UpdateDeathOfCuy is the resolver for the updateDeathOfCuy field.
func (r *mutationResolver) UpdateDeathOfCuy(ctx context.Context, idCuy int, death models.RecordUpdate) (*bool, error) {
	return boolResult(r.Store.Cuys.UpdateDeath(ctx, idCuy, &death))
}

// RemoveDeathCuy is the resolver for the removeDeathCuy field.
func (r *mutationResolver) RemoveDeathCuy(ctx context.Context, idCuy int) (*bool, error) {
	return boolResult(r.Store.Cuys.RemoveDeath(ctx, idCuy))
}

// Cuys is the resolver for the cuys field.
func (r *queryResolver) Cuys(ctx context.Context, skip *int, limit *int, filter bool) (*models.CuyPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "cuys"); err != nil {
		return nil, err
	}
	return r.Store.Cuys.List(ctx, filter, utils.NormalizePage(skip, limit))
}

// CuyByID is the resolver for the cuyById field.
func (r *queryResolver) CuyByID(ctx context.Context, idCuy int) (*models.Cuy, error) {
	cuy, err := r.Store.Cuys.ByID(ctx, idCuy)
	if err != nil {
		return nil, err
	}
	return scoped(ctx, r.Store, "cuy", cuy, cuy.Active)
}

// CuyByEarring is the resolver for the cuyByEarring field.
func (r *queryResolver) CuyByEarring(ctx context.Context, earring string) (*models.Cuy, error) {
	cuy, err := r.Store.Cuys.ByEarring(ctx, earring)
	if err != nil {
		return nil, err
	}
	return scoped(ctx, r.Store, "cuy", cuy, cuy.Active)
}

// CuysByRace is the resolver for the cuysByRace field.
func (r *queryResolver) CuysByRace(ctx context.Context, race string, skip *int, limit *int, filter bool) (*models.CuyPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "cuys"); err != nil {
		return nil, err
	}
	return r.Store.Cuys.ByRace(ctx, race, filter, utils.NormalizePage(skip, limit))
}

// CuysByGenre is the resolver for the cuysByGenre field.
func (r *queryResolver) CuysByGenre(ctx context.Context, genre models.Genre, skip *int, limit *int, filter bool) (*models.CuyPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "cuys"); err != nil {
		return nil, err
	}
	return r.Store.Cuys.ByGenre(ctx, genre, filter, utils.NormalizePage(skip, limit))
}

// CuysByPool is the resolver for the cuysByPool field.
func (r *queryResolver) CuysByPool(ctx context.Context, idPool int, skip *int, limit *int, filter bool) (*models.CuyPagination, error) {
	if err := r.Store.CheckListAccess(ctx, filter, "cuys"); err != nil {
		return nil, err
	}
	return r.Store.Cuys.ByPool(ctx, idPool, filter, utils.NormalizePage(skip, limit))
}

// CertifiedBy is the resolver for the certified_by field.
func (r *sacaResolver) CertifiedBy(ctx context.Context, obj *models.CuySaca) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.CertifiedById)
}

// User is the resolver for the user field.
func (r *sacaResolver) User(ctx context.Context, obj *models.CuySaca) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.UserId)
}

// User is the resolver for the user field.
func (r *weightResolver) User(ctx context.Context, obj *models.CuyWeight) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.UserId)
}

// Cuy returns CuyResolver implementation.
func (r *Resolver) Cuy() CuyResolver { return &cuyResolver{r} }

// Death returns DeathResolver implementation.
func (r *Resolver) Death() DeathResolver { return &deathResolver{r} }

// Saca returns SacaResolver implementation.
func (r *Resolver) Saca() SacaResolver { return &sacaResolver{r} }

// Weight returns WeightResolver implementation.
func (r *Resolver) Weight() WeightResolver { return &weightResolver{r} }

type cuyResolver struct{ *Resolver }
type deathResolver struct{ *Resolver }
type sacaResolver struct{ *Resolver }
type weightResolver struct{ *Resolver }
