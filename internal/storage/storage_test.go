package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"client-portal-backend/internal/config"
	apperrors "client-portal-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	key := ObjectKey("p1", "f1", "brief.pdf")

	obj, err := store.Put(ctx, key, strings.NewReader("hello"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(5), obj.Size)
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.Equal(t, "projects/p1/files/f1/brief.pdf", obj.Key)

	info, rc, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
	assert.Equal(t, obj.Size, info.Size)

	require.NoError(t, store.Delete(ctx, key))
	_, _, err = store.Get(ctx, key)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, store.Delete(ctx, key))
}

func TestNewS3Store(t *testing.T) {
	ctx := context.Background()

	t.Run("custom endpoint", func(t *testing.T) {
		s, err := NewS3Store(ctx, S3Config{
			Bucket:          "attachments",
			Endpoint:        "http://minio:9000/",
			AccessKeyID:     "AKIA",
			SecretAccessKey: "SECRET",
			UsePathStyle:    true,
		})
		require.NoError(t, err)
		assert.Equal(t, DriverS3, s.Driver())
	})

	t.Run("aws", func(t *testing.T) {
		s, err := NewS3Store(ctx, S3Config{Bucket: "attachments", Region: "eu-west-1", AccessKeyID: "AKIA", SecretAccessKey: "SECRET"})
		require.NoError(t, err)
		assert.Equal(t, "attachments", s.bucket)
	})

	t.Run("bucket required", func(t *testing.T) {
		_, err := NewS3Store(ctx, S3Config{})
		assert.ErrorIs(t, err, apperrors.ErrS3BucketRequired)
	})
}

func TestOpen(t *testing.T) {
	store, err := Open(context.Background(), &config.Config{AttachmentsDriver: "memory"})
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, store.Driver())

	_, err = Open(context.Background(), &config.Config{AttachmentsDriver: "gcs"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAttachmentDriver)
}
