package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/grange_backend/utils"
	"gorm.io/gorm"
)

type Role struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RoleOperation grants one operation to a role.
type RoleOperation struct {
	RoleId      int       `gorm:"primaryKey;autoIncrement:false" json:"role_id"`
	OperationId int       `gorm:"primaryKey;autoIncrement:false;index" json:"operation_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type RoleInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
}

type RoleUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

type RoleStore struct{ s *Store }

func (st *RoleStore) Add(ctx context.Context, input *RoleInput) (*Role, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	role := Role{Name: input.Name, Description: input.Description}
	if err := st.s.db.WithContext(ctx).Create(&role).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.ErrInvalidInput("Role name already exists")
		}
		st.s.logError("AddRole", "create", input.Name, err)
		return nil, err
	}
	return &role, nil
}

func (st *RoleStore) Update(ctx context.Context, id int, input *RoleUpdate) (*Role, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	role, err := st.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) > 0 {
		if err := st.s.db.WithContext(ctx).Model(role).Updates(updates).Error; err != nil {
			if utils.IsDuplicateKey(err) {
				return nil, utils.ErrInvalidInput("Role name already exists")
			}
			st.s.logError("UpdateRole", "update", id, err)
			return nil, err
		}
	}
	return st.ByID(ctx, id)
}

// Delete refuses while any user still holds the role.
func (st *RoleStore) Delete(ctx context.Context, id int) (bool, error) {
	err := st.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var holders int64
		if err := tx.Model(&UserRole{}).Where("role_id = ?", id).Count(&holders).Error; err != nil {
			return err
		}
		if holders > 0 {
			return utils.ErrForbidden("Forbidden. Role is being used by user, delete role from user first")
		}
		result := tx.Delete(&Role{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrNotFound("Invalid idRole")
		}
		return tx.Where("role_id = ?", id).Delete(&RoleOperation{}).Error
	})
	if err != nil {
		if utils.KindOf(err) == utils.KindInternal {
			st.s.logError("DeleteRole", "transaction", id, err)
		}
		return false, err
	}
	return true, nil
}

// AddOperation grants the operation and patches the warm permission sets of
// every user holding the role.
func (st *RoleStore) AddOperation(ctx context.Context, roleId int, operationId int) (bool, error) {
	if _, err := st.ByID(ctx, roleId); err != nil {
		return false, err
	}
	if _, err := st.s.Operations.ByID(ctx, operationId); err != nil {
		return false, err
	}
	link := RoleOperation{RoleId: roleId, OperationId: operationId}
	if err := st.s.db.WithContext(ctx).Where(link).FirstOrCreate(&link).Error; err != nil {
		st.s.logError("AddOperationToRole", "create link", link, err)
		return false, err
	}
	userIds, err := st.HolderIds(ctx, roleId)
	if err != nil {
		return false, err
	}
	if err := st.s.Permissions.Grant(ctx, userIds, operationId); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteOperation revokes the operation and patches the warm permission sets
// of every holder that no other role still grants it to.
func (st *RoleStore) DeleteOperation(ctx context.Context, roleId int, operationId int) (bool, error) {
	result := st.s.db.WithContext(ctx).Where("role_id = ? AND operation_id = ?", roleId, operationId).Delete(&RoleOperation{})
	if result.Error != nil {
		st.s.logError("DeleteOperationOfRole", "delete link", roleId, result.Error)
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, utils.ErrNotFound("Role does not hold this operation")
	}
	userIds, err := st.HolderIds(ctx, roleId)
	if err != nil {
		return false, err
	}
	if err := st.s.Permissions.Revoke(ctx, userIds, operationId); err != nil {
		return false, err
	}
	return true, nil
}

func (st *RoleStore) ByID(ctx context.Context, id int) (*Role, error) {
	var role Role
	if err := st.s.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, utils.NotFoundOr(err, "Invalid idRole")
	}
	return &role, nil
}

func (st *RoleStore) ByIDs(ctx context.Context, ids []int) ([]*Role, error) {
	var roles []*Role
	if err := st.s.db.WithContext(ctx).Where("id IN ?", ids).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (st *RoleStore) ByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	if err := st.s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, utils.NotFoundOr(err, "Invalid name of role")
	}
	return &role, nil
}

func (st *RoleStore) List(ctx context.Context) ([]*Role, error) {
	var roles []*Role
	if err := st.s.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		st.s.logError("Roles", "find", nil, err)
		return nil, err
	}
	return roles, nil
}

func (st *RoleStore) HolderIds(ctx context.Context, roleId int) ([]int, error) {
	var userIds []int
	err := st.s.db.WithContext(ctx).Model(&UserRole{}).Where("role_id = ?", roleId).Pluck("user_id", &userIds).Error
	if err != nil {
		return nil, err
	}
	return userIds, nil
}

// OperationIdsOf returns the operation ids granted by each role.
func (st *RoleStore) OperationIdsOf(ctx context.Context, roleIds []int) (map[int][]int, error) {
	var links []RoleOperation
	if err := st.s.db.WithContext(ctx).Where("role_id IN ?", roleIds).Order("operation_id").Find(&links).Error; err != nil {
		return nil, err
	}
	result := make(map[int][]int, len(roleIds))
	for _, l := range links {
		result[l.RoleId] = append(result[l.RoleId], l.OperationId)
	}
	return result, nil
}
