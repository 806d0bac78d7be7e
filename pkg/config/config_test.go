package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg := LoadConfig()
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, "4000", cfg.Port)
		assert.Equal(t, "uploads", cfg.UploadsDir)
		assert.Equal(t, "/uploads", cfg.UploadPrefix)
		assert.Equal(t, 64, cfg.MaxDocumentDepth)
		require.NoError(t, cfg.Validate())
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("MAX_DOCUMENT_DEPTH", "16")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

		cfg := LoadConfig()
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 16, cfg.MaxDocumentDepth)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects a prefix without a leading slash", func(t *testing.T) {
		cfg := LoadConfig()
		cfg.UploadPrefix = "uploads"
		assert.Error(t, cfg.Validate())
	})

	t.Run("requires a region with an S3 bucket", func(t *testing.T) {
		cfg := LoadConfig()
		cfg.S3Bucket = "my-bucket"
		cfg.S3Region = ""
		assert.Error(t, cfg.Validate())
	})
}
