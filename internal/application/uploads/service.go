// Package uploads implements the image upload gateway: validation,
// forwarding to the hosting provider, and deletion by public ID or
// delivery URL.
package uploads

import (
	"context"
	"io"

	"github.com/villa-upsell/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MaxImageBytes is the upload size ceiling.
const MaxImageBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Validation errors surfaced to the client as 422s.
var (
	ErrUnsupportedImageType = shared.NewDomainError("INVALID_INPUT", "File must be a jpeg, png, gif or webp image")
	ErrImageTooLarge        = shared.NewDomainError("INVALID_INPUT", "Image must not exceed 5MB")
)

// StoredImage is the provider's record of an uploaded image.
type StoredImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// ImageStore abstracts the image-hosting provider.
type ImageStore interface {
	// Upload stores the image and returns its public URL and
	// provider-assigned identifier.
	Upload(ctx context.Context, file io.Reader) (*StoredImage, error)
	// Delete removes the image with the given public ID.
	Delete(ctx context.Context, publicID string) error
}

// Service exposes the upload gateway operations. A nil store means the
// provider is not configured; every operation then fails with a
// configuration error rather than falling back to local storage.
type Service struct {
	store  ImageStore
	logger *zap.Logger
}

// NewService creates a new uploads Service.
func NewService(store ImageStore, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// UploadImage validates and forwards an uploaded image to the provider.
func (s *Service) UploadImage(ctx context.Context, file io.Reader, contentType string, size int64) (*StoredImage, error) {
	if !allowedImageTypes[contentType] {
		return nil, ErrUnsupportedImageType
	}
	if size > MaxImageBytes {
		return nil, ErrImageTooLarge
	}
	if s.store == nil {
		return nil, shared.ErrNotConfigured
	}
	return s.store.Upload(ctx, file)
}

// DeleteImage removes an image by its provider public ID.
func (s *Service) DeleteImage(ctx context.Context, publicID string) error {
	if s.store == nil {
		return shared.ErrNotConfigured
	}
	return s.store.Delete(ctx, publicID)
}

// DeleteImageByURL derives the public ID from a delivery URL and
// deletes the image. Failures of any kind, including an unparseable
// URL, report false; callers use this for best-effort cleanup.
func (s *Service) DeleteImageByURL(ctx context.Context, url string) bool {
	publicID, ok := ExtractPublicID(url)
	if !ok {
		return false
	}
	if s.store == nil {
		return false
	}
	if err := s.store.Delete(ctx, publicID); err != nil {
		s.logger.Warn("Image cleanup failed",
			zap.String("public_id", publicID),
			zap.Error(err),
		)
		return false
	}
	return true
}
