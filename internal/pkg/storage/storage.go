package storage

import (
	"context"
	"io"
)

// Storage is the blob store behind uploaded apartment images.
type Storage interface {
	// Save writes content under the given relative path, creating parents as needed.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the blob at the given relative path for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, path string) error
}
