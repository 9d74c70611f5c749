// Package blobstore moves byte payloads to and from path-addressed object storage.
package blobstore

import (
	"context"
	"fmt"

	"github.com/kurochkinivan/exam_analyzer/internal/config"
)

type Store interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, path, localDestination string) error
	Validate(path string) error
	Ping(ctx context.Context) error
}

func New(cfg config.Blob) (Store, error) {
	switch cfg.Driver {
	case config.BlobDriverAzure:
		return NewAzureStore(cfg.AzureAccountURL, cfg.AzureConnectionString)
	case config.BlobDriverLocal:
		return NewLocalStore(cfg.LocalRoot), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Driver)
	}
}
