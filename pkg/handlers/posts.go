package handlers

import (
	"errors"
	"net/http"
	"time"

	"post-board-backend/pkg/config"
	"post-board-backend/pkg/content"
	"post-board-backend/pkg/database"
	"post-board-backend/pkg/document"
	"post-board-backend/pkg/utils"
)

type PostsHandler struct {
	config  *config.Config
	content *content.Store
	db      database.PostStore
}

func NewPostsHandler(cfg *config.Config, contentStore *content.Store, db database.PostStore) *PostsHandler {
	return &PostsHandler{config: cfg, content: contentStore, db: db}
}

// GET /posts
// Returns every post, most recent first. No pagination boundary is
// defined for this endpoint; clients get the full list.
func (h *PostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.content.List()
	if err != nil {
		writeContentError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{"posts": posts})
}

// POST /posts
func (h *PostsHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AuthorID     string        `json:"authorId"`
		Title        string        `json:"title"`
		Content      document.Node `json:"content"`
		TargetOrgIDs []string      `json:"targetOrgIds"`
	}
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid body")
		return
	}

	// No authentication exists yet, so an absent authorId falls back to
	// the seeded default author.
	authorID := req.AuthorID
	if authorID == "" {
		if author, err := h.db.GetUserByEmail(h.config.DefaultAuthorEmail); err == nil {
			authorID = author.ID
		}
	}

	post, err := h.content.Create(authorID, req.Title, req.Content, req.TargetOrgIDs)
	if err != nil {
		writeContentError(w, err)
		return
	}
	utils.WriteCreatedResponse(w, map[string]interface{}{"post": post})
}

// GET /
func (h *PostsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(); err != nil {
		utils.WriteErrorResponseWithCode(w, http.StatusServiceUnavailable,
			"STORAGE_UNAVAILABLE", "Post storage is unavailable", err.Error())
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"status":      "ok",
		"environment": h.config.Environment,
		"time":        time.Now().UTC().Format(time.RFC3339),
	})
}

// writeContentError maps content store rejections onto HTTP responses:
// validation rejections are 400 with their specific code, storage
// failures are 503 and eligible for caller-side retry.
func writeContentError(w http.ResponseWriter, err error) {
	var verr *document.ValidationError
	if errors.As(err, &verr) {
		utils.WriteErrorResponseWithCode(w, http.StatusBadRequest, verr.Code, verr.Message, "")
		return
	}
	if errors.Is(err, database.ErrStorageUnavailable) {
		utils.WriteErrorResponseWithCode(w, http.StatusServiceUnavailable,
			"STORAGE_UNAVAILABLE", "Post storage is unavailable", err.Error())
		return
	}
	utils.WriteInternalServerErrorResponse(w, err.Error())
}
