package content

import (
	"strings"
	"time"

	"post-board-backend/pkg/database"
	"post-board-backend/pkg/document"
	"post-board-backend/pkg/models"

	"github.com/google/uuid"
)

// Store validates and persists posts. It holds no state of its own;
// everything durable lives in the PostStore handed in at construction.
type Store struct {
	db       database.PostStore
	maxDepth int
}

// NewStore builds a content store over the given post store
func NewStore(db database.PostStore, maxDepth int) *Store {
	if maxDepth <= 0 {
		maxDepth = document.DefaultMaxDepth
	}
	return &Store{db: db, maxDepth: maxDepth}
}

// Create validates the submission, assigns a fresh id and timestamp
// and persists the post with a single insert. Rejections carry the
// specific reason: EMPTY_TITLE for a blank title, or whichever code
// the document validator returned for a malformed content tree.
func (s *Store) Create(authorID, title string, content document.Node, targetOrgIDs []string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &document.ValidationError{Code: document.CodeEmptyTitle, Message: "title must not be empty"}
	}

	if err := document.Validate(&content, 0, s.maxDepth); err != nil {
		return nil, err
	}

	if targetOrgIDs == nil {
		targetOrgIDs = []string{}
	}

	post := &models.Post{
		ID:           uuid.New().String(),
		AuthorID:     authorID,
		Title:        title,
		Content:      content,
		TargetOrgIDs: targetOrgIDs,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.db.InsertPost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// List returns every post, most recent first. No pagination is applied
// here; callers that need a boundary must layer it on top.
func (s *Store) List() ([]models.Post, error) {
	return s.db.ListPosts()
}
