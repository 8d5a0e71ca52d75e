package storage

import (
	"context"
	"fmt"

	"guestdesk/core/config"
)

// Storage is the blob store behind the document feature.
type Storage interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
	Delete(ctx context.Context, path string) error
	FileURL(ctx context.Context, path string) (string, error)
}

func InitStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "s3":
		return newS3Storage(cfg)
	case "local", "":
		return newLocalStorage(cfg.LocalDir)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
