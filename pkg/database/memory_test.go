package database

import (
	"fmt"
	"testing"
	"time"

	"post-board-backend/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPostStoreOrdering(t *testing.T) {
	t.Run("orders by createdAt descending", func(t *testing.T) {
		store := NewMemoryPostStore()
		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		for i := 0; i < 3; i++ {
			require.NoError(t, store.InsertPost(&models.Post{
				ID:        fmt.Sprintf("p%d", i),
				Title:     fmt.Sprintf("Post %d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			}))
		}

		posts, err := store.ListPosts()
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "p2", posts[0].ID)
		assert.Equal(t, "p1", posts[1].ID)
		assert.Equal(t, "p0", posts[2].ID)
	})

	t.Run("breaks timestamp ties by insertion order", func(t *testing.T) {
		store := NewMemoryPostStore()
		at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		for _, id := range []string{"first", "second", "third"} {
			require.NoError(t, store.InsertPost(&models.Post{ID: id, CreatedAt: at}))
		}

		posts, err := store.ListPosts()
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "first", posts[0].ID)
		assert.Equal(t, "second", posts[1].ID)
		assert.Equal(t, "third", posts[2].ID)
	})

	t.Run("list returns a snapshot copy", func(t *testing.T) {
		store := NewMemoryPostStore()
		require.NoError(t, store.InsertPost(&models.Post{ID: "a", CreatedAt: time.Now()}))

		posts, err := store.ListPosts()
		require.NoError(t, err)
		posts[0].Title = "mutated"

		again, err := store.ListPosts()
		require.NoError(t, err)
		assert.Empty(t, again[0].Title)
	})
}

func TestMemoryPostStoreUsers(t *testing.T) {
	store := NewMemoryPostStore()

	user := &models.User{Email: "admin@example.com", FullName: "Administrator"}
	require.NoError(t, store.CreateUser(user))
	assert.NotEmpty(t, user.ID)

	byEmail, err := store.GetUserByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := store.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", byID.Email)

	_, err = store.GetUserByEmail("nobody@example.com")
	assert.Error(t, err)
}
