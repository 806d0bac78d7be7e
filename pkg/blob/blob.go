package blob

import (
	"context"
	"errors"
	"io"
)

// ErrEmptyObject is returned by Put when the stream carries no bytes
var ErrEmptyObject = errors.New("blob: empty object")

// Store persists named binary objects. Put is all-or-nothing: on any
// failure no partial object becomes visible under name.
type Store interface {
	// Put writes every byte of r under name and returns the byte count
	Put(ctx context.Context, name string, r io.Reader) (int64, error)
	// URL returns the public reference path for a stored name. It is a
	// pure function of name, so the store and whatever serves the bytes
	// agree on addressing without coordination.
	URL(name string) string
}
