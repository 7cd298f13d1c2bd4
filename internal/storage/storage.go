// Package storage keeps project attachments in a blob store.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"client-portal-backend/internal/config"
	apperrors "client-portal-backend/internal/errors"
)

// Object describes a stored attachment
type Object struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Store is the attachment blob store used by the client portal
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (Object, error)
	Get(ctx context.Context, key string) (Object, io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Driver() string
}

// ErrObjectNotFound is returned when a key is not present in the store
var ErrObjectNotFound = apperrors.NewNotFoundError("file")

// Open builds the store selected by ATTACHMENTS_DRIVER
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.AttachmentsDriver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverS3:
		return NewS3Store(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			UsePathStyle:    cfg.S3PathStyle,
		})
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAttachmentDriver, cfg.AttachmentsDriver)
	}
}

// ObjectKey lays attachments out per project
func ObjectKey(projectID, fileID, name string) string {
	return fmt.Sprintf("projects/%s/files/%s/%s", projectID, fileID, name)
}
