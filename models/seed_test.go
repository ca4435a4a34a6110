package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdminIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.ctx

	synced, err := env.store.Operations.Sync(ctx, OperationRegistry)
	require.NoError(t, err)
	require.Equal(t, len(OperationRegistry), synced)

	input := &UserInput{
		Names:     "Root Grange",
		FirstName: "Root",
		LastName:  "Grange",
		Email:     "root@grange.test",
		Phone:     "987654320",
		Password:  "secret123",
	}
	for i := 0; i < 2; i++ {
		user, err := env.store.SeedAdmin(ctx, input)
		require.NoError(t, err)
		assert.True(t, user.AccessActive)
		assert.True(t, user.AccessInactive)

		roles, ops, err := env.store.Permissions.Compute(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, roles)
		assert.Len(t, ops, len(OperationRegistry))
	}

	var count int64
	require.NoError(t, env.store.DB().Model(&Role{}).Where("name = ?", AdminRoleName).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
