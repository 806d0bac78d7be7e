package models

import (
	"time"

	"post-board-backend/pkg/document"
)

// Post represents a published post targeted at zero or more organizations
type Post struct {
	ID           string        `json:"id" db:"id"`
	AuthorID     string        `json:"authorId" db:"author_id"`
	Title        string        `json:"title" db:"title"`
	Content      document.Node `json:"content" db:"content"`
	TargetOrgIDs []string      `json:"targetOrgIds" db:"target_org_ids"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
}
