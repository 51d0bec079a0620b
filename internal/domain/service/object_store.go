package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when a referenced object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ProgressFunc receives the bytes transferred so far and the expected total.
type ProgressFunc func(transferred, total int64)

// ObjectStore is path-addressed blob storage with URL-based retrieval.
type ObjectStore interface {
	// Upload writes content to path and returns a durable retrieval URL.
	Upload(ctx context.Context, path string, content io.Reader, size int64, contentType string, progress ProgressFunc) (string, error)

	// Exists reports whether the object behind a retrieval URL is present.
	Exists(ctx context.Context, ref string) (bool, error)

	// Delete removes the object behind a retrieval URL. ErrObjectNotFound when already gone.
	Delete(ctx context.Context, ref string) error

	// Owns reports whether ref is a retrieval URL issued by this store.
	Owns(ref string) bool

	// DeleteByPrefix removes every object under prefix for which keep returns false,
	// and returns how many were removed. A nil keep removes everything under prefix.
	DeleteByPrefix(ctx context.Context, prefix string, keep func(path string) bool) (int, error)

	// ObjectPath maps a retrieval URL back to the object path.
	ObjectPath(ref string) (string, bool)
}
