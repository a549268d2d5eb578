package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/konstrukt-app/konstrukt-be/internal/config"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// mediaStorage is the S3-compatible implementation of [MediaStorage] on top
// of a MinIO client. Uploaded objects are publicly readable; the bucket
// policy is managed outside this service.
type mediaStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewMediaStorage constructs a [MediaStorage] from the media object-store
// configuration. The bucket is created on first use if it does not exist.
func NewMediaStorage(cfg config.Media, log *logger.Logger) (MediaStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		log.Err(err).Str("func", "NewMediaStorage").Msg("error creating media store client")
		return nil, fmt.Errorf("error creating media store client: %w", err)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.Endpoint
	}

	log.Debug().Str("bucket", cfg.Bucket).Msg("creating media storage")
	return &mediaStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		logger:    log,
	}, nil
}

// Upload stores data under objectName and returns the public URL the object
// is served from.
func (m *mediaStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	if err := m.ensureBucket(ctx); err != nil {
		log.Err(err).Str("func", "*mediaStorage.Upload").Msg("error ensuring bucket")
		return "", err
	}

	_, err := m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.Err(err).Str("func", "*mediaStorage.Upload").Msg("error uploading object")
		return "", fmt.Errorf("error uploading media object: %w", err)
	}

	return m.publicURL + "/" + m.bucket + "/" + objectName, nil
}

func (m *mediaStorage) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("error checking media bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("error creating media bucket: %w", err)
	}

	return nil
}
