package graph

import (
	"context"

	"github.com/mmdatafocus/grange_backend/models"
)

// boolResult adapts a store (ok, err) pair to a nullable Boolean field.
func boolResult(ok bool, err error) (*bool, error) {
	if err != nil {
		return nil, err
	}
	return &ok, nil
}

// scoped hides an entity whose lifecycle partition the caller may not read.
func scoped[T any](ctx context.Context, store *models.Store, singular string, entity *T, active bool) (*T, error) {
	if err := store.CheckEntityAccess(ctx, active, singular); err != nil {
		return nil, err
	}
	return entity, nil
}
