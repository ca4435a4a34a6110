package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/grange_backend/models"
)

type userReader struct {
	store *models.Store
}

func (r *userReader) getUsers(ctx context.Context, ids []int) []*dataloader.Result[*models.User] {
	results, err := r.store.Users.ByIDs(ctx, ids)
	if err != nil {
		return handleError[*models.User](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

func (r *userReader) getRoleIds(ctx context.Context, userIds []int) []*dataloader.Result[[]int] {
	results, err := r.store.Users.RoleIdsOf(ctx, userIds)
	if err != nil {
		return handleError[[]int](len(userIds), err)
	}
	return generateIdListResults(results, userIds)
}

// GetUser returns nil for an unknown id, e.g. the author of a record whose user was deleted.
func GetUser(ctx context.Context, id int) (*models.User, error) {
	loaders := For(ctx)
	return loaders.UserLoader.Load(ctx, id)()
}

func GetRolesOfUser(ctx context.Context, userId int) ([]*models.Role, error) {
	loaders := For(ctx)
	ids, err := loaders.userRoleLoader.Load(ctx, userId)()
	if err != nil {
		return nil, err
	}
	return loadMany(ctx, loaders.RoleLoader, ids)
}
