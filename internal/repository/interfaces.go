package repository

import (
	"context"
	"net/url"

	"go-greenery-relay/internal/storage"
	"go-greenery-relay/pkg/models"
)

// ImageRepository defines the interface for image data access operations
type ImageRepository interface {
	// FetchImage validates imageURL and downloads it from the matching source
	FetchImage(ctx context.Context, imageURL string) (*models.ImagePayload, error)
}

// RoutedFetcher is an image source that only serves some URLs
type RoutedFetcher interface {
	storage.ImageFetcher
	Handles(u *url.URL) bool
}
