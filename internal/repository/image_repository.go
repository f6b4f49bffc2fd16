package repository

import (
	"context"
	"fmt"

	"go-greenery-relay/internal/storage"
	"go-greenery-relay/pkg/models"
	"go-greenery-relay/pkg/validation"
)

// SourceImageRepository picks an image source per URL. Routed sources are tried in
// order; anything else with an http(s) scheme goes to the plain HTTP fetcher.
type SourceImageRepository struct {
	validator *validation.URLValidator
	routed    []RoutedFetcher
	fallback  storage.ImageFetcher
}

// NewSourceImageRepository creates a repository over an HTTP fetcher and optional routed sources
func NewSourceImageRepository(validator *validation.URLValidator, fallback storage.ImageFetcher, routed ...RoutedFetcher) ImageRepository {
	return &SourceImageRepository{
		validator: validator,
		routed:    routed,
		fallback:  fallback,
	}
}

// FetchImage retrieves an image from a URL
func (r *SourceImageRepository) FetchImage(ctx context.Context, imageURL string) (*models.ImagePayload, error) {
	u, err := r.validator.ValidateImageURL(imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImageURL, err)
	}

	for _, source := range r.routed {
		if source.Handles(u) {
			return source.FetchImage(ctx, imageURL)
		}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, u.Scheme)
	}
	return r.fallback.FetchImage(ctx, imageURL)
}
