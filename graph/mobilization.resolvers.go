package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.41

import (
	"context"

	"github.com/mmdatafocus/grange_backend/middlewares"
	"github.com/mmdatafocus/grange_backend/models"
)

// Cuy is the resolver for the cuy field.
func (r *mobilizationResolver) Cuy(ctx context.Context, obj *models.Mobilization) (*models.Cuy, error) {
	return middlewares.GetCuy(ctx, obj.CuyId)
}

// Origin is the resolver for the origin field.
func (r *mobilizationResolver) Origin(ctx context.Context, obj *models.Mobilization) (*models.Pool, error) {
	return middlewares.GetPool(ctx, obj.OriginId)
}

// Destination is the resolver for the destination field.
func (r *mobilizationResolver) Destination(ctx context.Context, obj *models.Mobilization) (*models.Pool, error) {
	return middlewares.GetPool(ctx, obj.DestinationId)
}

// User is the resolver for the user field.
func (r *mobilizationResolver) User(ctx context.Context, obj *models.Mobilization) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.UserId)
}

// AddMobilization is the resolver for the addMobilization field.
func (r *mutationResolver) AddMobilization(ctx context.Context, mobilization models.MobilizationInput) (*models.Mobilization, error) {
	ctx, span := r.span(ctx, "addMobilization")
	defer span.End()
	return r.Store.Mobilizations.Add(ctx, &mobilization)
}

// UpdateMobilization is the resolver for the updateMobilization field.
func (r *mutationResolver) UpdateMobilization(ctx context.Context, idMobilization int, update models.MobilizationUpdate) (*models.Mobilization, error) {
	return r.Store.Mobilizations.Update(ctx, idMobilization, &update)
}

// MobilizationByID is the resolver for the mobilizationById field.
func (r *queryResolver) MobilizationByID(ctx context.Context, idMobilization int) (*models.Mobilization, error) {
	return r.Store.Mobilizations.ByID(ctx, idMobilization)
}

// Mobilization returns MobilizationResolver implementation.
func (r *Resolver) Mobilization() MobilizationResolver { return &mobilizationResolver{r} }

type mobilizationResolver struct{ *Resolver }
