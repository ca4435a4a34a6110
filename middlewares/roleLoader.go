package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/grange_backend/models"
)

type roleReader struct {
	store *models.Store
}

func (r *roleReader) getRoles(ctx context.Context, ids []int) []*dataloader.Result[*models.Role] {
	results, err := r.store.Roles.ByIDs(ctx, ids)
	if err != nil {
		return handleError[*models.Role](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

func (r *roleReader) getOperationIds(ctx context.Context, roleIds []int) []*dataloader.Result[[]int] {
	results, err := r.store.Roles.OperationIdsOf(ctx, roleIds)
	if err != nil {
		return handleError[[]int](len(roleIds), err)
	}
	return generateIdListResults(results, roleIds)
}

func GetRole(ctx context.Context, id int) (*models.Role, error) {
	loaders := For(ctx)
	return loaders.RoleLoader.Load(ctx, id)()
}

func GetRoles(ctx context.Context, ids []int) ([]*models.Role, error) {
	return loadMany(ctx, For(ctx).RoleLoader, ids)
}

// GetOperationsOfRole returns the operations granted by a role.
func GetOperationsOfRole(ctx context.Context, roleId int) ([]*models.Operation, error) {
	loaders := For(ctx)
	ids, err := loaders.roleOperationLoader.Load(ctx, roleId)()
	if err != nil {
		return nil, err
	}
	return loadMany(ctx, loaders.OperationLoader, ids)
}
