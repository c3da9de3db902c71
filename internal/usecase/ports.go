package usecase

import (
	"context"
)

// BlobStore is the external object-storage collaborator. Put persists
// one payload under key and returns the URL it can be retrieved from.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

// MediaReader serves previously stored payloads back by key.
type MediaReader interface {
	Open(ctx context.Context, key string) (contentType string, data []byte, err error)
}

// UploadFile is one binary payload of an upload batch.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}
