package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"post-board-backend/pkg/blob"
	"post-board-backend/pkg/models"
	"post-board-backend/pkg/utils"
)

// Upload error codes
const (
	CodeEmptyUpload    = "EMPTY_UPLOAD"
	CodeUnsafeFileName = "UNSAFE_FILE_NAME"
	CodeUploadFailed   = "UPLOAD_FAILED"
)

// UploadError is a rejection of an upload request. EmptyUpload and
// UnsafeFileName are caller-fixable; UploadFailed may be transient
// (disk pressure) and is safe for the caller to retry.
type UploadError struct {
	Code    string
	Message string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Store accepts uploaded byte streams and persists them under
// collision-safe generated names in a blob store.
type Store struct {
	blobs blob.Store
}

// NewStore builds an upload store over the given blob backend
func NewStore(blobs blob.Store) *Store {
	return &Store{blobs: blobs}
}

// Store sanitizes clientFileName, generates a unique stored name and
// persists the stream. No two uploads ever share a stored name, even
// for identical client names arriving in the same millisecond: the
// name embeds a random nonce next to the timestamp.
func (s *Store) Store(ctx context.Context, r io.Reader, clientFileName string) (*models.StoredFile, error) {
	safeName, err := SanitizeFileName(clientFileName)
	if err != nil {
		return nil, err
	}

	nonce, err := utils.GenerateURLToken(6)
	if err != nil {
		return nil, &UploadError{Code: CodeUploadFailed, Message: "generate upload nonce: " + err.Error()}
	}
	storedName := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), nonce, safeName)

	if _, err := s.blobs.Put(ctx, storedName, r); err != nil {
		if errors.Is(err, blob.ErrEmptyObject) {
			return nil, &UploadError{Code: CodeEmptyUpload, Message: "no bytes were supplied"}
		}
		return nil, &UploadError{Code: CodeUploadFailed, Message: err.Error()}
	}

	return &models.StoredFile{
		StoredName:   storedName,
		OriginalName: safeName,
		URL:          s.blobs.URL(storedName),
	}, nil
}

// SanitizeFileName collapses whitespace runs into single underscores
// and rejects names that could escape the managed directory.
func SanitizeFileName(name string) (string, error) {
	name = whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "_")

	if name == "" || name == "." || name == ".." {
		return "", &UploadError{Code: CodeUnsafeFileName, Message: "file name is empty"}
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", &UploadError{Code: CodeUnsafeFileName, Message: fmt.Sprintf("file name %q contains path sequences", name)}
	}
	return name, nil
}
