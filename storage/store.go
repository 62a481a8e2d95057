// Package storage keeps uploaded media (recipe images) outside the database.
package storage

import (
	"context"
	"errors"
	"fmt"

	"foodgram-api/config"
)

// ErrObjectNotFound is returned when a key does not exist in the store.
var ErrObjectNotFound = errors.New("object not found")

// ErrUnknownStorageType is returned by New for an unsupported STORAGE_TYPE.
var ErrUnknownStorageType = errors.New("unknown storage type")

// Store saves media content under slash separated keys and resolves their public URL.
type Store interface {
	Save(ctx context.Context, key string, content []byte) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// New builds the store selected by cfg.Type.
func New(cfg config.StorageConfig) (Store, error) {
	switch cfg.Type {
	case "", "filesystem":
		return NewFilesystemStore(cfg.MediaRoot, cfg.MediaURL)
	case "s3":
		return NewS3Store(cfg.S3)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStorageType, cfg.Type)
	}
}
