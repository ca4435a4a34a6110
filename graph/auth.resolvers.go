package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.41

import (
	"context"

	"github.com/mmdatafocus/grange_backend/middlewares"
	"github.com/mmdatafocus/grange_backend/models"
)

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, email string, password string) (*models.AuthData, error) {
	return r.Store.Users.Login(ctx, email, password)
}

// Signup is the resolver for the signup field.
func (r *mutationResolver) Signup(ctx context.Context, user models.UserInput) (*models.User, error) {
	return r.Store.Users.Signup(ctx, &user)
}

// UpdateUser is the resolver for the updateUser field.
func (r *mutationResolver) UpdateUser(ctx context.Context, idUser int, user models.UserUpdate) (*models.User, error) {
	return r.Store.Users.Update(ctx, idUser, &user)
}

// DeleteUser is the resolver for the deleteUser field.
func (r *mutationResolver) DeleteUser(ctx context.Context, idUser int) (*bool, error) {
	return boolResult(r.Store.Users.Delete(ctx, idUser))
}

// AddRoleToUser is the resolver for the addRoleToUser field.
func (r *mutationResolver) AddRoleToUser(ctx context.Context, idUser int, idRole int) (*bool, error) {
	return boolResult(r.Store.Users.AddRole(ctx, idUser, idRole))
}

// DeleteRoleOfUser is the resolver for the deleteRoleOfUser field.
func (r *mutationResolver) DeleteRoleOfUser(ctx context.Context, idUser int, idRole int) (*bool, error) {
	return boolResult(r.Store.Users.DeleteRole(ctx, idUser, idRole))
}

// ResetPasswordOfUser is the resolver for the resetPasswordOfUser field.
func (r *mutationResolver) ResetPasswordOfUser(ctx context.Context, oldPassword string, newPassword string) (*bool, error) {
	return boolResult(r.Store.Users.ResetPassword(ctx, oldPassword, newPassword))
}

// UpdateAccessOfUser is the resolver for the updateAccessOfUser field.
func (r *mutationResolver) UpdateAccessOfUser(ctx context.Context, idUser int, access models.AccessUpdate) (*bool, error) {
	return boolResult(r.Store.Users.UpdateAccess(ctx, idUser, &access))
}

// AddRole is the resolver for the addRole field.
func (r *mutationResolver) AddRole(ctx context.Context, role models.RoleInput) (*models.Role, error) {
	return r.Store.Roles.Add(ctx, &role)
}

// UpdateRole is the resolver for the updateRole field.
func (r *mutationResolver) UpdateRole(ctx context.Context, idRole int, role models.RoleUpdate) (*models.Role, error) {
	return r.Store.Roles.Update(ctx, idRole, &role)
}

// DeleteRole is the resolver for the deleteRole field.
func (r *mutationResolver) DeleteRole(ctx context.Context, idRole int) (*bool, error) {
	return boolResult(r.Store.Roles.Delete(ctx, idRole))
}

// AddOperationToRole is the resolver for the addOperationToRole field.
func (r *mutationResolver) AddOperationToRole(ctx context.Context, idRole int, idOperation int) (*bool, error) {
	return boolResult(r.Store.Roles.AddOperation(ctx, idRole, idOperation))
}

// DeleteOperationOfRole is the resolver for the deleteOperationOfRole field.
func (r *mutationResolver) DeleteOperationOfRole(ctx context.Context, idRole int, idOperation int) (*bool, error) {
	return boolResult(r.Store.Roles.DeleteOperation(ctx, idRole, idOperation))
}

// UserInfo is the resolver for the userInfo field.
func (r *queryResolver) UserInfo(ctx context.Context) (*models.User, error) {
	return r.Store.Users.Current(ctx)
}

// Users is the resolver for the users field.
func (r *queryResolver) Users(ctx context.Context) ([]*models.User, error) {
	return r.Store.Users.List(ctx)
}

// UserByID is the resolver for the userById field.
func (r *queryResolver) UserByID(ctx context.Context, idUser int) (*models.User, error) {
	return r.Store.Users.ByID(ctx, idUser)
}

// Roles is the resolver for the roles field.
func (r *queryResolver) Roles(ctx context.Context) ([]*models.Role, error) {
	return r.Store.Roles.List(ctx)
}

// RoleByID is the resolver for the roleById field.
func (r *queryResolver) RoleByID(ctx context.Context, idRole int) (*models.Role, error) {
	return r.Store.Roles.ByID(ctx, idRole)
}

// Operations is the resolver for the operations field.
func (r *queryResolver) Operations(ctx context.Context) ([]*models.Operation, error) {
	return r.Store.Operations.List(ctx)
}

// OperationByID is the resolver for the operationById field.
func (r *queryResolver) OperationByID(ctx context.Context, idOperation int) (*models.Operation, error) {
	return r.Store.Operations.ByID(ctx, idOperation)
}

// Operations is the resolver for the operations field.
func (r *roleResolver) Operations(ctx context.Context, obj *models.Role) ([]*models.Operation, error) {
	return middlewares.GetOperationsOfRole(ctx, obj.ID)
}

// Roles is the resolver for the roles field.
func (r *userResolver) Roles(ctx context.Context, obj *models.User) ([]*models.Role, error) {
	return middlewares.GetRolesOfUser(ctx, obj.ID)
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Role returns RoleResolver implementation.
func (r *Resolver) Role() RoleResolver { return &roleResolver{r} }

// User returns UserResolver implementation.
func (r *Resolver) User() UserResolver { return &userResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type roleResolver struct{ *Resolver }
type userResolver struct{ *Resolver }
