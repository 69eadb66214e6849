package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains file/object storage abstractions. The local backend
// holds the journal cache; the S3-compatible backend mirrors it when configured.

// ErrNotExist is returned (wrapped) when an object is missing.
var ErrNotExist = errors.New("object does not exist")

// ErrInvalidKey is returned when a key would resolve outside the storage root.
var ErrInvalidKey = errors.New("invalid object key")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
// ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key string
	// Location is the absolute file path for the local backend and an s3:// URI otherwise.
	Location     string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is a reusable object storage client interface.
// Methods use context and streaming readers. Reads go through the local
// filesystem path in ObjectInfo.Location, so no Get is exposed.
type Storage interface {
	// Put stores an object under the given key, replacing any previous object.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Stat returns object info without reading content.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// Delete removes an object by key. Missing objects yield ErrNotExist.
	Delete(ctx context.Context, key string) error
}
