package database

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"post-board-backend/pkg/models"

	"github.com/google/uuid"
)

// MemoryPostStore keeps posts and users in process memory. Used in
// development and in tests; a restart loses everything.
type MemoryPostStore struct {
	mu    sync.RWMutex
	posts []models.Post // insertion order
	users map[string]models.User
}

// NewMemoryPostStore creates an empty in-memory store
func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{
		users: map[string]models.User{},
	}
}

// InsertPost appends one post
func (s *MemoryPostStore) InsertPost(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, *post)
	return nil
}

// ListPosts returns a snapshot ordered by createdAt descending. The
// sort is stable, so posts sharing a timestamp keep insertion order.
func (s *MemoryPostStore) ListPosts() ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, len(s.posts))
	copy(posts, s.posts)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// CreateUser stores a user, assigning id and createdAt when absent
func (s *MemoryPostStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

// GetUserByEmail looks a user up by email
func (s *MemoryPostStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

// GetUserByID looks a user up by id
func (s *MemoryPostStore) GetUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, fmt.Errorf("user not found")
}

// HealthCheck always succeeds for the in-memory store
func (s *MemoryPostStore) HealthCheck() error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryPostStore) Close() error {
	return nil
}

var _ PostStore = (*MemoryPostStore)(nil)
