package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded files live. The local driver writes
// to disk; paths handed out are relative keys, never absolute filesystem
// locations.
type FileStorage interface {
	// Upload stores the file under the given relative path and returns the
	// stored key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download opens the stored file for reading
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file; deleting a missing file is not an error
	Delete(ctx context.Context, path string) error

	// Exists reports whether a file is present under the path
	Exists(ctx context.Context, path string) (bool, error)
}
