// Package storage defines the object storage port backing the HTTP facade.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when an object does not exist in the bucket.
var ErrNotFound = errors.New("object not found")

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Name         string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

// ObjectStore is the port the HTTP facade and the agent harness use to move
// bytes in and out of the bucket.
type ObjectStore interface {
	// Put stores the object under name, overwriting any existing object.
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Get returns the object's bytes and metadata, or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, ObjectInfo, error)
	// Head returns the object's metadata without its bytes, or ErrNotFound.
	Head(ctx context.Context, name string) (ObjectInfo, error)
	// List returns up to limit objects whose names start with prefix.
	List(ctx context.Context, prefix string, limit int) ([]ObjectInfo, error)
	// Delete removes the object, or returns ErrNotFound.
	Delete(ctx context.Context, name string) error
}
