package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"post-board-backend/pkg/api"
	"post-board-backend/pkg/blob"
	"post-board-backend/pkg/config"
	"post-board-backend/pkg/content"
	"post-board-backend/pkg/database"
	"post-board-backend/pkg/uploads"
)

func main() {
	cfg := config.GetCached()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.NewPostStore(database.StoreConfig{
		PostgresDSN: cfg.PostgresDSN,
		Debug:       cfg.Debug,
	})
	if err != nil {
		log.Fatalf("Failed to initialize post store: %v", err)
	}
	defer db.Close()

	blobStore, staticDir, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	contentStore := content.NewStore(db, cfg.MaxDocumentDepth)
	uploadStore := uploads.NewStore(blobStore)

	router := api.NewRouter(cfg, contentStore, uploadStore, db, staticDir)

	addr := cfg.Host + ":" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("API listening on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// newBlobStore picks the upload backend: S3 when a bucket is
// configured, otherwise the managed local directory. The returned
// staticDir is non-empty only for the disk backend, where the router
// must serve the stored files itself.
func newBlobStore(cfg *config.Config) (blob.Store, string, error) {
	if cfg.S3Bucket != "" {
		fmt.Println("Using S3 upload storage")
		store, err := blob.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Region, cfg.S3PublicBaseURL)
		return store, "", err
	}

	fmt.Printf("Using local upload storage in %s\n", cfg.UploadsDir)
	store, err := blob.NewDiskStore(cfg.UploadsDir, cfg.UploadPrefix)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}
