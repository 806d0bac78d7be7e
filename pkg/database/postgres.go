package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"post-board-backend/pkg/models"

	"github.com/lib/pq"
)

// PostgresPostStore is the PostgreSQL-backed PostStore
type PostgresPostStore struct {
	db *sql.DB
}

// NewPostgresPostStore opens a PostgreSQL connection pool
func NewPostgresPostStore(dsn string) (PostStore, error) {
	// Sanitize DSN to avoid stray CR/LF from env values
	dsn = strings.TrimSpace(dsn)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// Modest pool limits; one insert or one read per request
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresPostStore{db: db}, nil
}

// InsertPost persists one post row
func (s *PostgresPostStore) InsertPost(post *models.Post) error {
	content, err := json.Marshal(post.Content)
	if err != nil {
		return fmt.Errorf("marshal post content: %w", err)
	}

	query := `
        INSERT INTO posts (id, author_id, title, content, target_org_ids, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err = s.db.Exec(query, post.ID, post.AuthorID, post.Title, content,
		pq.Array(post.TargetOrgIDs), post.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: insert post: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// ListPosts returns all posts, most recent first. Ties on created_at
// fall back to the insertion sequence so the order is stable.
func (s *PostgresPostStore) ListPosts() ([]models.Post, error) {
	query := `
        SELECT id, author_id, title, content, target_org_ids, created_at
        FROM posts
        ORDER BY created_at DESC, seq ASC
    `
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		var content []byte
		var orgIDs pq.StringArray
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Title, &content, &orgIDs, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan post: %v", ErrStorageUnavailable, err)
		}
		if err := json.Unmarshal(content, &post.Content); err != nil {
			return nil, fmt.Errorf("unmarshal post %s content: %w", post.ID, err)
		}
		post.TargetOrgIDs = []string(orgIDs)
		if post.TargetOrgIDs == nil {
			post.TargetOrgIDs = []string{}
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", ErrStorageUnavailable, err)
	}
	return posts, nil
}

// CreateUser creates a user row, assigning id and createdAt
func (s *PostgresPostStore) CreateUser(user *models.User) error {
	query := `
        INSERT INTO users (email, full_name, password_hash, created_at)
        VALUES ($1, $2, $3, NOW())
        RETURNING id, created_at
    `
	err := s.db.QueryRow(query, user.Email, user.FullName, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: create user: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// GetUserByEmail looks a user up by email
func (s *PostgresPostStore) GetUserByEmail(email string) (*models.User, error) {
	return s.getUser("email = $1", email)
}

// GetUserByID looks a user up by id
func (s *PostgresPostStore) GetUserByID(id string) (*models.User, error) {
	return s.getUser("id = $1", id)
}

func (s *PostgresPostStore) getUser(where, arg string) (*models.User, error) {
	query := `
        SELECT id, email, COALESCE(full_name,''), COALESCE(password_hash,''), created_at
        FROM users
        WHERE ` + where
	var user models.User
	err := s.db.QueryRow(query, arg).
		Scan(&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user: %v", ErrStorageUnavailable, err)
	}
	return &user, nil
}

// HealthCheck pings the database
func (s *PostgresPostStore) HealthCheck() error {
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresPostStore) Close() error {
	return s.db.Close()
}

var _ PostStore = (*PostgresPostStore)(nil)
