package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/serroba/linkstash/internal/mapping"
	"github.com/serroba/linkstash/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMapping(code, owner string) *mapping.Mapping {
	now := time.Now()

	return &mapping.Mapping{
		ShortCode: mapping.Code(code),
		LongURL:   "https://example.com",
		CreatedAt: now,
		ExpiresAt: now.Add(48 * time.Hour),
		OwnerID:   owner,
	}
}

func TestMemoryStore_Put(t *testing.T) {
	t.Run("stores record and index entry together", func(t *testing.T) {
		s := store.NewMemoryStore()
		ctx := context.Background()

		err := s.Put(ctx, testMapping("abc12", "owner1"), time.Hour)
		require.NoError(t, err)

		got, err := s.Get(ctx, "abc12")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.LongURL)

		codes, err := s.IndexMembers(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, []mapping.Code{"abc12"}, codes)
	})

	t.Run("evicts after the ttl elapses", func(t *testing.T) {
		s := store.NewMemoryStore()
		ctx := context.Background()

		err := s.Put(ctx, testMapping("abc12", "owner1"), 10*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		_, err = s.Get(ctx, "abc12")
		assert.ErrorIs(t, err, mapping.ErrNotFound)

		exists, err := s.Exists(ctx, "abc12")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMemoryStore_Get(t *testing.T) {
	t.Run("missing record returns ErrNotFound", func(t *testing.T) {
		s := store.NewMemoryStore()

		_, err := s.Get(context.Background(), "nope1")

		assert.ErrorIs(t, err, mapping.ErrNotFound)
	})

	t.Run("returns a copy", func(t *testing.T) {
		s := store.NewMemoryStore()
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, testMapping("abc12", "owner1"), time.Hour))

		first, err := s.Get(ctx, "abc12")
		require.NoError(t, err)
		first.LongURL = "https://tampered.example.com"

		second, err := s.Get(ctx, "abc12")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", second.LongURL)
	})
}

func TestMemoryStore_SetWithTTL(t *testing.T) {
	t.Run("rewrites the record without touching the index", func(t *testing.T) {
		s := store.NewMemoryStore()
		ctx := context.Background()

		m := testMapping("abc12", "owner1")
		require.NoError(t, s.Put(ctx, m, time.Hour))

		m.ExpiresAt = m.ExpiresAt.Add(48 * time.Hour)
		require.NoError(t, s.SetWithTTL(ctx, m, 2*time.Hour))

		got, err := s.Get(ctx, "abc12")
		require.NoError(t, err)
		assert.True(t, got.ExpiresAt.Equal(m.ExpiresAt))

		codes, err := s.IndexMembers(ctx, "owner1")
		require.NoError(t, err)
		assert.Len(t, codes, 1)
	})
}

func TestMemoryStore_Remove(t *testing.T) {
	t.Run("drops record and index entry together", func(t *testing.T) {
		s := store.NewMemoryStore()
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, testMapping("abc12", "owner1"), time.Hour))
		require.NoError(t, s.Remove(ctx, "abc12", "owner1"))

		_, err := s.Get(ctx, "abc12")
		assert.ErrorIs(t, err, mapping.ErrNotFound)

		codes, err := s.IndexMembers(ctx, "owner1")
		require.NoError(t, err)
		assert.Empty(t, codes)
	})
}

func TestMemoryStore_Index(t *testing.T) {
	t.Run("add, list, and remove members", func(t *testing.T) {
		s := store.NewMemoryStore()
		ctx := context.Background()

		require.NoError(t, s.IndexAdd(ctx, "owner1", "aaa11"))
		require.NoError(t, s.IndexAdd(ctx, "owner1", "bbb22"))
		require.NoError(t, s.IndexAdd(ctx, "owner1", "bbb22")) // set semantics

		codes, err := s.IndexMembers(ctx, "owner1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []mapping.Code{"aaa11", "bbb22"}, codes)

		require.NoError(t, s.IndexRemove(ctx, "owner1", "aaa11"))

		codes, err = s.IndexMembers(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, []mapping.Code{"bbb22"}, codes)
	})

	t.Run("unknown owner has an empty index", func(t *testing.T) {
		s := store.NewMemoryStore()

		codes, err := s.IndexMembers(context.Background(), "nobody")

		require.NoError(t, err)
		assert.Empty(t, codes)
	})

	t.Run("delete leaves the index for lazy reconciliation", func(t *testing.T) {
		s := store.NewMemoryStore()
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, testMapping("abc12", "owner1"), time.Hour))
		require.NoError(t, s.Delete(ctx, "abc12"))

		_, err := s.Get(ctx, "abc12")
		assert.ErrorIs(t, err, mapping.ErrNotFound)

		codes, err := s.IndexMembers(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, []mapping.Code{"abc12"}, codes)
	})
}
