package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRefreshesOnlyDescription(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.ctx

	_, err := env.store.Operations.Sync(ctx, []OperationDefinition{
		{Name: "sheds", Type: OperationQuery, Description: "Lists sheds"},
	})
	require.NoError(t, err)
	id, err := env.store.Operations.IdByName(ctx, "sheds")
	require.NoError(t, err)

	synced, err := env.store.Operations.Sync(ctx, []OperationDefinition{
		{Name: "sheds", Type: OperationMutation, Description: "Lists active or inactive sheds"},
		{Name: "addShed", Type: OperationMutation, Description: "Creates a shed"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, synced)

	op, err := env.store.Operations.ByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "sheds", op.Name)
	assert.Equal(t, "Lists active or inactive sheds", op.Description)
	assert.Equal(t, OperationQuery, op.Type)
}
