package storage

import (
	"context"
	"io"
	"time"
)

// Package storage holds the object-store abstraction backing document
// files, case images and attachments. Implementations stream content;
// nothing touches local disk.

// PutOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; set -1 to let the
// backend buffer/chunk as it supports.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// FileStore is an S3-compatible object storage client. Methods take a
// context and use streaming readers; safe for concurrent use.
type FileStore interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside
	// its info. A missing object surfaces as an error satisfying
	// IsNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL for downloading the object
	// without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
