// Package imaging provides the Cloudinary-backed image store.
package imaging

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/villa-upsell/backend/internal/application/uploads"
	"github.com/villa-upsell/backend/internal/infrastructure/config"
)

// CloudinaryStore uploads and deletes images through the Cloudinary
// upload API.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore creates a CloudinaryStore from either a connection
// URL or discrete credentials. insecureTLS disables certificate
// verification on provider calls; only the local deployment mode sets
// it.
func NewCloudinaryStore(cfg *config.CloudinaryConfig, insecureTLS bool) (*CloudinaryStore, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}

	var (
		client *cloudinary.Cloudinary
		err    error
	)
	if cfg.URL != "" {
		client, err = cloudinary.NewFromURL(cfg.URL)
	} else {
		client, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	client.Config.URL.Secure = true

	if insecureTLS {
		httpClient := http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
		client.Upload.Client = httpClient
		client.Admin.Client = httpClient
	}

	return &CloudinaryStore{client: client, folder: cfg.Folder}, nil
}

// Upload stores the image under the configured folder with a random
// public ID and returns the secure delivery URL.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader) (*uploads.StoredImage, error) {
	publicID := fmt.Sprintf("%s/%s", s.folder, uuid.NewString())

	result, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: "image",
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}

	return &uploads.StoredImage{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

// Delete destroys the image with the given public ID. Any result other
// than "ok" is an error.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	result, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary destroy failed: %s", result.Result)
	}
	return nil
}

// Compile-time interface compliance check
var _ uploads.ImageStore = (*CloudinaryStore)(nil)
