package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface defines the interface for report artifact storage backends
type StorageInterface interface {
	// GeneratePresignedDownloadURL returns a signed, expiring URL for key.
	// filename is the name offered to the client when it saves the file.
	GeneratePresignedDownloadURL(ctx context.Context, key, filename string, expiresIn time.Duration) (string, error)

	// ResolveDownloadToken validates the token of a presigned URL and returns
	// the key and filename it grants.
	ResolveDownloadToken(ctx context.Context, token string) (key, filename string, err error)

	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	DeleteFile(ctx context.Context, key string) error

	SaveFile(ctx context.Context, key string, reader io.Reader) error

	ReadFile(ctx context.Context, key string) (io.ReadCloser, error)
}
