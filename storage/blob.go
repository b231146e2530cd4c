package storage

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no blob exists for the given id.
var ErrNotFound = errors.New("file not found")

// BlobInfo carries the metadata stored alongside a blob.
type BlobInfo struct {
	Filename    string
	ContentType string
	Length      int64
}

// BlobStore stores binary media (product images, videos) addressed by
// generated 24-hex identifiers, independently from the document collections.
type BlobStore interface {
	Put(ctx context.Context, data []byte, filename, contentType string) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (io.ReadCloser, *BlobInfo, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}
