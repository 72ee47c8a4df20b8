package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every Store must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("get missing returns nil nil", func(t *testing.T) {
		s := newStore(t)
		v, err := s.Get(context.Background(), "absent")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "k1", []byte(`{"id":"1"}`)))

		v, err := s.Get(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"id":"1"}`), v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "k", []byte("old")))
		require.NoError(t, s.Set(ctx, "k", []byte("new")))

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), v)
	})

	t.Run("delete removes and is idempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "x", []byte("1")))
		require.NoError(t, s.Delete(ctx, "x"))

		v, err := s.Get(ctx, "x")
		require.NoError(t, err)
		assert.Nil(t, v)

		require.NoError(t, s.Delete(ctx, "x"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "a", []byte("1")))
		require.NoError(t, s.Set(ctx, "b", []byte("2")))
		require.NoError(t, s.Delete(ctx, "a"))

		v, err := s.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), v)
	})

	t.Run("clear removes all keys", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "a", []byte("1")))
		require.NoError(t, s.Set(ctx, "b", []byte("2")))
		require.NoError(t, s.Clear(ctx))

		for _, k := range []string{"a", "b"} {
			v, err := s.Get(ctx, k)
			require.NoError(t, err)
			assert.Nil(t, v, "key %s should be cleared", k)
		}

		require.NoError(t, s.Clear(ctx))
	})
}
