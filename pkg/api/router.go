package api

import (
	"fmt"
	"net/http"
	"time"

	"post-board-backend/pkg/config"
	"post-board-backend/pkg/content"
	"post-board-backend/pkg/database"
	"post-board-backend/pkg/handlers"
	customMiddleware "post-board-backend/pkg/middleware"
	"post-board-backend/pkg/uploads"
	"post-board-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the HTTP gateway: middleware chain, post and
// upload routes, and (when staticDir is non-empty) static serving of
// previously uploaded files.
func NewRouter(cfg *config.Config, contentStore *content.Store, uploadStore *uploads.Store, db database.PostStore, staticDir string) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg)
	setupRoutes(router, cfg, contentStore, uploadStore, db, staticDir)

	return router
}

// setupMiddleware installs the global middleware chain
func setupMiddleware(router *chi.Mux, cfg *config.Config) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(customMiddleware.Logger(cfg))
	router.Use(customMiddleware.Recovery(cfg))
	router.Use(customMiddleware.CORS(cfg))
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(middleware.Compress(5))

	if cfg.IsDevelopment() {
		router.Use(middleware.Heartbeat("/ping"))
	}
}

// setupRoutes wires all endpoints
func setupRoutes(router *chi.Mux, cfg *config.Config, contentStore *content.Store, uploadStore *uploads.Store, db database.PostStore, staticDir string) {
	postsHandler := handlers.NewPostsHandler(cfg, contentStore, db)
	uploadsHandler := handlers.NewUploadsHandler(cfg, uploadStore)

	// Health check endpoint
	router.Get("/", postsHandler.HealthCheck)

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", postsHandler.ListPosts)
		r.With(customMiddleware.ContentTypeJSON).Post("/", postsHandler.CreatePost)
	})

	router.With(customMiddleware.MaxBodySize(cfg.MaxUploadBytes)).Post("/uploads", uploadsHandler.Upload)

	// Static retrieval of stored uploads (disk backend only; the S3
	// backend serves bytes from the bucket URL directly)
	if staticDir != "" {
		fileServer := http.StripPrefix(cfg.UploadPrefix+"/", http.FileServer(http.Dir(staticDir)))
		router.Get(cfg.UploadPrefix+"/*", func(w http.ResponseWriter, r *http.Request) {
			fileServer.ServeHTTP(w, r)
		})
	}

	// 404 handler
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteNotFoundResponse(w, fmt.Sprintf("Route not found: %s %s", r.Method, r.URL.Path))
	})

	// 405 handler
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorResponseWithCode(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED",
			fmt.Sprintf("Method %s not allowed for %s", r.Method, r.URL.Path), "")
	})
}
