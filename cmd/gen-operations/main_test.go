package main

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmdatafocus/grange_backend/models"
	"github.com/stretchr/testify/require"
)

func TestRegistryMatchesSchema(t *testing.T) {
	schema, err := loadSchema("../../graph/schema")
	require.NoError(t, err)

	if diff := cmp.Diff(models.OperationRegistry, collect(schema)); diff != "" {
		t.Fatalf("models/operationRegistry.go is stale, run go generate ./graph (-registry +schema):\n%s", diff)
	}
}

func TestRenderIsByteStable(t *testing.T) {
	schema, err := loadSchema("../../graph/schema")
	require.NoError(t, err)
	src, err := render(collect(schema))
	require.NoError(t, err)

	onDisk, err := os.ReadFile("../../models/operationRegistry.go")
	require.NoError(t, err)
	require.Equal(t, string(onDisk), string(src))
}

func TestCollectSkipsIntrospection(t *testing.T) {
	schema, err := loadSchema("../../graph/schema")
	require.NoError(t, err)
	for _, d := range collect(schema) {
		require.NotContains(t, d.Name, "__")
	}
}
