package storage

import (
	"fmt"

	"github.com/DrekStyler/handypro-api/config"
	"github.com/DrekStyler/handypro-api/internal/domain"
)

// Backend identifies the blob storage implementation.
type Backend string

const (
	BackendGCS   Backend = "gcs"
	BackendS3    Backend = "s3"
	BackendLocal Backend = "local"
)

// New creates a blob store from configuration. GCS (Firebase Storage bucket) is the
// default; S3 and local disk are alternatives for other deployments and development.
func New(cfg *config.Config) (domain.BlobStore, error) {
	switch Backend(cfg.StorageBackend) {
	case BackendGCS:
		return NewGCSStore(cfg)
	case BackendS3:
		return NewS3Store(cfg)
	case BackendLocal:
		return NewLocalStore(cfg.LocalStorePath)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
