package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStateStore_Consume_SingleUse(t *testing.T) {
	store := NewMemoryStateStore()

	require.NoError(t, store.Save(context.Background(), "state-1", time.Minute))

	ok, err := store.Consume(context.Background(), "state-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// second consume of the same token fails
	ok, err = store.Consume(context.Background(), "state-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStateStore_Consume_Unknown(t *testing.T) {
	store := NewMemoryStateStore()

	ok, err := store.Consume(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStateStore_Consume_Expired(t *testing.T) {
	store := NewMemoryStateStore()

	require.NoError(t, store.Save(context.Background(), "state-1", -time.Second))

	ok, err := store.Consume(context.Background(), "state-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
