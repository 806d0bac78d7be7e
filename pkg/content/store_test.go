package content_test

import (
	"fmt"
	"testing"

	"post-board-backend/pkg/content"
	"post-board-backend/pkg/database"
	"post-board-backend/pkg/document"
	"post-board-backend/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloDoc(text string) document.Node {
	return document.Node{
		Type: document.TypeDoc,
		Content: []document.Node{
			{Type: document.TypeParagraph, Content: []document.Node{
				{Type: document.TypeText, Text: text},
			}},
		},
	}
}

func validationCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*document.ValidationError)
	require.True(t, ok, "expected *document.ValidationError, got %T", err)
	return verr.Code
}

func TestCreate(t *testing.T) {
	t.Run("persists a valid post and returns it from list", func(t *testing.T) {
		store := content.NewStore(database.NewMemoryPostStore(), 0)

		post, err := store.Create("author-1", "My First Post", helloDoc("Hello"), []string{})
		require.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.Equal(t, "author-1", post.AuthorID)

		posts, err := store.List()
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "My First Post", posts[0].Title)
		assert.Equal(t, helloDoc("Hello"), posts[0].Content)
		assert.Equal(t, []string{}, posts[0].TargetOrgIDs)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		store := content.NewStore(database.NewMemoryPostStore(), 0)

		_, err := store.Create("author-1", "   ", helloDoc("Hello"), nil)
		assert.Equal(t, document.CodeEmptyTitle, validationCode(t, err))
	})

	t.Run("rejects invalid content without persisting", func(t *testing.T) {
		store := content.NewStore(database.NewMemoryPostStore(), 0)

		bad := document.Node{
			Type: document.TypeDoc,
			Content: []document.Node{
				{Type: "carousel", Content: []document.Node{}},
			},
		}
		_, err := store.Create("author-1", "Bad", bad, nil)
		assert.Equal(t, document.CodeUnknownNodeType, validationCode(t, err))

		posts, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("normalizes nil target orgs to an empty set", func(t *testing.T) {
		store := content.NewStore(database.NewMemoryPostStore(), 0)

		post, err := store.Create("author-1", "No orgs", helloDoc("Hi"), nil)
		require.NoError(t, err)
		assert.NotNil(t, post.TargetOrgIDs)
		assert.Empty(t, post.TargetOrgIDs)
	})

	t.Run("surfaces storage failures unchanged", func(t *testing.T) {
		store := content.NewStore(&failingStore{}, 0)

		_, err := store.Create("author-1", "Title", helloDoc("Hi"), nil)
		assert.ErrorIs(t, err, database.ErrStorageUnavailable)
	})
}

func TestList(t *testing.T) {
	t.Run("returns posts most recent first", func(t *testing.T) {
		store := content.NewStore(database.NewMemoryPostStore(), 0)

		const n = 5
		for i := 0; i < n; i++ {
			_, err := store.Create("author-1", fmt.Sprintf("Post %d", i), helloDoc("Hi"), nil)
			require.NoError(t, err)
		}

		posts, err := store.List()
		require.NoError(t, err)
		require.Len(t, posts, n)
		for i := 0; i < n; i++ {
			assert.Equal(t, fmt.Sprintf("Post %d", n-1-i), posts[i].Title)
		}
		for i := 1; i < n; i++ {
			assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt))
		}
	})
}

// failingStore simulates an unavailable backend
type failingStore struct {
	database.MemoryPostStore
}

func (s *failingStore) InsertPost(post *models.Post) error {
	return fmt.Errorf("%w: connection refused", database.ErrStorageUnavailable)
}

func (s *failingStore) ListPosts() ([]models.Post, error) {
	return nil, fmt.Errorf("%w: connection refused", database.ErrStorageUnavailable)
}
