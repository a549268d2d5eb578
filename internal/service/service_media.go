package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/store"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// mediaService is the concrete implementation of [MediaService].
type mediaService struct {
	media store.MediaStorage

	logger *logger.Logger
}

// NewMediaService constructs a [MediaService]. media may be nil when the
// object store is not configured; every upload then fails with
// [ErrMediaNotConfigured].
func NewMediaService(media store.MediaStorage, logger *logger.Logger) MediaService {
	logger.Debug().Msg("creating media service")
	return &mediaService{
		media:  media,
		logger: logger,
	}
}

// UploadMedia decodes the base64 body, derives an object name and content
// type, stores the object and returns its public URL.
//
// Object names are "<unix-millis>-<random>.<ext>" so uploads never collide
// and sort chronologically in the bucket.
func (s *mediaService) UploadMedia(ctx context.Context, upload models.MediaUpload) (string, error) {
	if s.media == nil {
		return "", ErrMediaNotConfigured
	}

	if upload.File == "" {
		return "", fmt.Errorf("%w: file is required", ErrInvalidDataProvided)
	}

	data, err := base64.StdEncoding.DecodeString(upload.File)
	if err != nil {
		return "", fmt.Errorf("%w: file is not valid base64", ErrInvalidDataProvided)
	}

	ext := fileExtension(upload.Filename, upload.Type)
	objectName := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	contentType := "image/" + ext
	if upload.Type == "video" {
		contentType = "video/" + ext
	}

	url, err := s.media.Upload(ctx, objectName, data, contentType)
	if err != nil {
		return "", fmt.Errorf("error uploading media: %w", err)
	}

	return url, nil
}

// fileExtension picks the stored object's extension: the original file name
// wins, the media type supplies the fallback.
func fileExtension(filename, mediaType string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		return strings.ToLower(filename[idx+1:])
	}

	if mediaType == "video" {
		return "mp4"
	}
	return "jpg"
}
