package utils

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidObjectName(t *testing.T) {
	assert.True(t, ValidObjectName("cuy-3f1c.png"))
	assert.True(t, ValidObjectName("thumb-cuy-3f1c.png"))
	for _, name := range []string{"", ".", "..", "../secret", "a/b.png", `a\b.png`} {
		assert.False(t, ValidObjectName(name), name)
	}
}

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, StorageFolderPhotos, "cuy-1.png", []byte("png"), "image/png"))
	rc, err := s.Get(ctx, StorageFolderPhotos, "cuy-1.png")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png", string(body))

	_, err = s.Get(ctx, StorageFolderFiles, "cuy-1.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Put(ctx, StorageFolderFiles, "../x.pdf", []byte("x"), "application/pdf"), ErrObjectNotFound)
	_, err = s.Get(ctx, "other", "x.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
