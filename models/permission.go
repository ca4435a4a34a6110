package models

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mmdatafocus/grange_backend/utils"
)

func PermissionKey(userId int) string {
	return fmt.Sprintf("%d_operation", userId)
}

func permissionVersionKey(userId int) string {
	return fmt.Sprintf("%d_operation_version", userId)
}

// PermissionStore keeps the per-user set of granted operation ids in the
// cache and computes it from roles on a miss.
type PermissionStore struct{ s *Store }

func (st *PermissionStore) OperationId(ctx context.Context, name string) (int, error) {
	return st.s.Operations.IdByName(ctx, name)
}

// Cached returns the warm permission set of the user; empty means a miss.
func (st *PermissionStore) Cached(ctx context.Context, userId int) ([]int, error) {
	members, err := st.s.cache.SetMembers(ctx, PermissionKey(userId))
	if err != nil {
		st.s.logError("CachedPermissions", "smembers", userId, err)
		return nil, err
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Compute joins the user's roles against their operations. It returns the
// number of roles and the deduplicated operation ids.
func (st *PermissionStore) Compute(ctx context.Context, userId int) (int, []int, error) {
	roleMap, err := st.s.Users.RoleIdsOf(ctx, []int{userId})
	if err != nil {
		st.s.logError("ComputePermissions", "roles of user", userId, err)
		return 0, nil, err
	}
	roleIds := roleMap[userId]
	if len(roleIds) == 0 {
		return 0, nil, nil
	}
	opMap, err := st.s.Roles.OperationIdsOf(ctx, roleIds)
	if err != nil {
		st.s.logError("ComputePermissions", "operations of roles", roleIds, err)
		return 0, nil, err
	}
	var ops []int
	for _, roleId := range roleIds {
		ops = append(ops, opMap[roleId]...)
	}
	return len(roleIds), utils.UniqueSlice(ops), nil
}

// Version is read before Compute and handed back to Save, so a set computed
// while a grant or revoke commits is not cached.
func (st *PermissionStore) Version(ctx context.Context, userId int) (int64, error) {
	v, err := st.s.cache.SetVersion(ctx, permissionVersionKey(userId))
	if err != nil {
		st.s.logError("PermissionVersion", "get", userId, err)
		return 0, err
	}
	return v, nil
}

func (st *PermissionStore) Save(ctx context.Context, userId int, version int64, operationIds []int) error {
	members := make([]interface{}, 0, len(operationIds))
	for _, id := range operationIds {
		members = append(members, id)
	}
	saved, err := st.s.cache.SetReplaceIfVersion(ctx, PermissionKey(userId), permissionVersionKey(userId), version, st.s.permissionTTL, members...)
	if err != nil {
		st.s.logError("SavePermissions", "set replace", userId, err)
		return err
	}
	if !saved {
		st.s.logger.WithField("user_id", userId).Debug("permission set changed while computing, not cached")
	}
	return nil
}

// Forget drops the user's cached set so the next check recomputes it.
func (st *PermissionStore) Forget(ctx context.Context, userId int) error {
	if err := st.s.cache.DeleteVersioned(ctx, PermissionKey(userId), permissionVersionKey(userId), st.versionTTL()); err != nil {
		st.s.logError("ForgetPermissions", "delete", userId, err)
		return err
	}
	return nil
}

// Grant adds the operation to every warm set among userIds. Cold users are
// left alone and an expired set is never recreated.
func (st *PermissionStore) Grant(ctx context.Context, userIds []int, operationId int) error {
	for _, userId := range userIds {
		if _, err := st.s.cache.SetAddIfExists(ctx, PermissionKey(userId), permissionVersionKey(userId), st.versionTTL(), operationId); err != nil {
			st.s.logError("GrantPermission", "sadd", userId, err)
			return err
		}
	}
	return nil
}

// Revoke removes the operation from every set among userIds unless another
// role of that user still grants it.
func (st *PermissionStore) Revoke(ctx context.Context, userIds []int, operationId int) error {
	for _, userId := range userIds {
		var stillGranted int64
		err := st.s.db.WithContext(ctx).Model(&RoleOperation{}).
			Joins("JOIN user_roles ON user_roles.role_id = role_operations.role_id").
			Where("user_roles.user_id = ? AND role_operations.operation_id = ?", userId, operationId).
			Count(&stillGranted).Error
		if err != nil {
			st.s.logError("RevokePermission", "count grants", userId, err)
			return err
		}
		if stillGranted > 0 {
			continue
		}
		if err := st.s.cache.SetRemoveVersioned(ctx, PermissionKey(userId), permissionVersionKey(userId), st.versionTTL(), operationId); err != nil {
			st.s.logError("RevokePermission", "srem", userId, err)
			return err
		}
	}
	return nil
}

// The counter outlives any set it guards.
func (st *PermissionStore) versionTTL() time.Duration {
	return st.s.permissionTTL + time.Minute
}
