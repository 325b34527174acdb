package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// getter is the read surface shared by every policy, letting the hit
// and miss helpers below work across cache kinds.
type getter[Key comparable, Value any] interface {
	Get(Key) (Value, bool)
}

func requireHit[Key, Value comparable](
	t *testing.T, cache getter[Key, Value],
	key Key, want Value,
) {
	t.Helper()
	got, ok := cache.Get(key)
	require.True(t, ok, "expected hit for key %v", key)
	require.Equal(t, want, got, "unexpected value for key %v", key)
}

func requireMiss[Key comparable, Value any](
	t *testing.T, cache getter[Key, Value],
	key Key,
) {
	t.Helper()
	_, ok := cache.Get(key)
	require.False(t, ok, "expected miss for key %v", key)
}
