package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVGetMissingKey(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	_, err := kv.Get(ctx, KeyAuth)
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestMemoryKVSetGetDelete(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	require.NoError(t, kv.Set(ctx, KeyEvents, `[{"id":"1"}]`))

	val, err := kv.Get(ctx, KeyEvents)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, val)

	require.NoError(t, kv.Delete(ctx, KeyEvents))
	_, err = kv.Get(ctx, KeyEvents)
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestMemoryKVOverwrite(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	require.NoError(t, kv.Set(ctx, KeyVideos, "old"))
	require.NoError(t, kv.Set(ctx, KeyVideos, "new"))

	val, err := kv.Get(ctx, KeyVideos)
	require.NoError(t, err)
	assert.Equal(t, "new", val)
}
