package cartstore

import (
	"os"
	"path/filepath"
	"testing"

	"atelie-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionFor(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		expected string
	}{
		{
			name:     "Nil user maps to guest partition",
			user:     nil,
			expected: "cart_guest",
		},
		{
			name:     "User with empty ID maps to guest partition",
			user:     &model.User{},
			expected: "cart_guest",
		},
		{
			name:     "Authenticated user gets own partition",
			user:     &model.User{ID: "user-42"},
			expected: "cart_user_user-42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PartitionFor(tt.user))
		})
	}
}

func TestMemoryStore(t *testing.T) {
	items := []model.CartItem{
		{ID: "prod-1", Name: "Vela 7 Dias", Price: 12.90, Quantity: 2},
		{ID: "prod-2", VariantID: "var-1", Name: "Guia de Oxalá", Price: 45.00, Quantity: 1},
	}

	t.Run("Missing partition reads as empty", func(t *testing.T) {
		store := NewMemoryStore()
		assert.Empty(t, store.Read("cart_guest"))
	})

	t.Run("Write then read round trip", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Write("cart_guest", items))
		assert.Equal(t, items, store.Read("cart_guest"))
	})

	t.Run("Partitions are isolated", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Write("cart_guest", items))
		require.NoError(t, store.Write(UserPartition("user-1"), items[:1]))

		assert.Len(t, store.Read("cart_guest"), 2)
		assert.Len(t, store.Read(UserPartition("user-1")), 1)
		assert.Empty(t, store.Read(UserPartition("user-2")))
	})

	t.Run("Write replaces the whole list", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Write("cart_guest", items))
		require.NoError(t, store.Write("cart_guest", items[1:]))

		got := store.Read("cart_guest")
		require.Len(t, got, 1)
		assert.Equal(t, "prod-2", got[0].ID)
	})

	t.Run("Mutating a read result does not affect the store", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Write("cart_guest", items))

		got := store.Read("cart_guest")
		got[0].Quantity = 99

		assert.Equal(t, 2, store.Read("cart_guest")[0].Quantity)
	})

	t.Run("Delete removes the partition", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Write("cart_guest", items))
		require.NoError(t, store.Delete("cart_guest"))
		assert.Empty(t, store.Read("cart_guest"))
	})

	t.Run("Delete of absent partition is a no-op", func(t *testing.T) {
		store := NewMemoryStore()
		assert.NoError(t, store.Delete("cart_guest"))
	})
}

func TestFileStore(t *testing.T) {
	logger := zerolog.Nop()

	newStore := func(t *testing.T) (Store, string) {
		dir := t.TempDir()
		store, err := NewFileStore(dir, logger)
		require.NoError(t, err)
		return store, dir
	}

	items := []model.CartItem{
		{ID: "prod-1", Name: "Defumador de Arruda", Price: 18.50, Quantity: 3},
	}

	t.Run("Missing partition reads as empty", func(t *testing.T) {
		store, _ := newStore(t)
		assert.Empty(t, store.Read("cart_guest"))
	})

	t.Run("Write then read round trip", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Write("cart_guest", items))
		assert.Equal(t, items, store.Read("cart_guest"))
	})

	t.Run("Malformed content reads as empty", func(t *testing.T) {
		store, dir := newStore(t)
		path := filepath.Join(dir, "cart_guest.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		assert.Empty(t, store.Read("cart_guest"))
	})

	t.Run("Nil write stores an empty list", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Write("cart_guest", nil))

		got := store.Read("cart_guest")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Delete removes the partition file", func(t *testing.T) {
		store, dir := newStore(t)
		require.NoError(t, store.Write("cart_guest", items))
		require.NoError(t, store.Delete("cart_guest"))

		_, err := os.Stat(filepath.Join(dir, "cart_guest.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Delete of absent partition is a no-op", func(t *testing.T) {
		store, _ := newStore(t)
		assert.NoError(t, store.Delete("cart_guest"))
	})

	t.Run("Partitions map to separate files", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Write("cart_guest", items))
		require.NoError(t, store.Write(UserPartition("user-1"), nil))

		assert.Len(t, store.Read("cart_guest"), 1)
		assert.Empty(t, store.Read(UserPartition("user-1")))
	})
}
