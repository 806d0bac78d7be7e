package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps objects as files under one managed directory, served
// publicly under a fixed URL prefix by the static file server.
type DiskStore struct {
	dir          string
	publicPrefix string
}

// NewDiskStore creates the managed directory if needed and returns a
// disk-backed store. Creation is idempotent; calling this twice over
// the same directory is safe.
func NewDiskStore(dir, publicPrefix string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
	}
	return &DiskStore{
		dir:          dir,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}, nil
}

// Dir returns the managed directory path
func (s *DiskStore) Dir() string {
	return s.dir
}

// Put streams r into a temporary file and renames it into place, so a
// failed write never leaves a partial object under the final name.
// Empty streams are rejected with ErrEmptyObject and leave nothing
// behind.
func (s *DiskStore) Put(ctx context.Context, name string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	written, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("write %s: %w", name, err)
	}
	if written == 0 {
		os.Remove(tmpName)
		return 0, ErrEmptyObject
	}

	final := filepath.Join(s.dir, name)
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("rename %s into place: %w", name, err)
	}
	return written, nil
}

// URL joins the public prefix with the stored name
func (s *DiskStore) URL(name string) string {
	return s.publicPrefix + "/" + name
}

var _ Store = (*DiskStore)(nil)
