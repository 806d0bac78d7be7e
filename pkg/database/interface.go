package database

import (
	"errors"
	"fmt"

	"post-board-backend/pkg/models"
)

// ErrStorageUnavailable marks infrastructure-level persistence
// failures. It is surfaced to the caller as-is and never retried here;
// retry policy belongs to the caller.
var ErrStorageUnavailable = errors.New("storage unavailable")

// PostStore defines durable post and user persistence
type PostStore interface {
	// InsertPost persists one post atomically. The caller supplies a
	// fully populated record (id and createdAt included).
	InsertPost(post *models.Post) error
	// ListPosts returns every post ordered by createdAt descending,
	// ties broken by insertion order.
	ListPosts() ([]models.Post, error)

	// Users (post authors)
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)

	// Health check
	HealthCheck() error

	// Close releases the underlying connections
	Close() error
}

// StoreConfig selects and configures a PostStore backend
type StoreConfig struct {
	PostgresDSN string
	Debug       bool
}

// NewPostStore picks a backend from the configuration: PostgreSQL when
// a DSN is configured, otherwise the in-memory store for development.
func NewPostStore(config StoreConfig) (PostStore, error) {
	if config.PostgresDSN != "" {
		fmt.Println("Using PostgreSQL post store")
		return NewPostgresPostStore(config.PostgresDSN)
	}

	fmt.Println("Using in-memory post store (posts are lost on restart)")
	return NewMemoryPostStore(), nil
}
