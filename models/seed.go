package models

import (
	"context"

	"github.com/mmdatafocus/grange_backend/utils"
)

const AdminRoleName = "admin"

// SeedAdmin makes sure a user with input.Email exists, sees both partitions
// and holds the admin role granting every registered operation. An existing
// user keeps its password.
func (s *Store) SeedAdmin(ctx context.Context, input *UserInput) (*User, error) {
	user, err := s.Users.ByEmail(ctx, input.Email)
	if utils.IsKind(err, utils.KindNotFound) {
		user, err = s.Users.Signup(ctx, input)
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.Users.UpdateAccess(ctx, user.ID, &AccessUpdate{Active: utils.NewTrue(), Inactive: utils.NewTrue()}); err != nil {
		return nil, err
	}

	role, err := s.Roles.ByName(ctx, AdminRoleName)
	if utils.IsKind(err, utils.KindNotFound) {
		description := "Every operation"
		role, err = s.Roles.Add(ctx, &RoleInput{Name: AdminRoleName, Description: &description})
	}
	if err != nil {
		return nil, err
	}
	operationIds, err := s.Operations.AllIds(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range operationIds {
		if _, err := s.Roles.AddOperation(ctx, role.ID, id); err != nil {
			return nil, err
		}
	}
	if _, err := s.Users.AddRole(ctx, user.ID, role.ID); err != nil {
		return nil, err
	}
	return s.Users.ByID(ctx, user.ID)
}
