package factory

import (
	"context"
	"fmt"

	"go-greenery-relay/internal/config"
	"go-greenery-relay/internal/provider"
	"go-greenery-relay/internal/repository"
	"go-greenery-relay/internal/storage"
	"go-greenery-relay/pkg/validation"
)

// ProviderType represents the supported inference backends
type ProviderType string

const (
	// GeminiProvider for the Gemini API (default)
	GeminiProvider ProviderType = config.ProviderGemini
	// OpenAIProvider for OpenAI and compatible chat completion endpoints
	OpenAIProvider ProviderType = config.ProviderOpenAI
)

// ProviderFactory creates inference providers
type ProviderFactory interface {
	CreateProvider(ctx context.Context, providerType ProviderType) (provider.Provider, error)
}

// StorageFactory creates the image repository and its sources
type StorageFactory interface {
	CreateRepository() (repository.ImageRepository, error)
}

// providerFactory implements ProviderFactory
type providerFactory struct {
	cfg *config.Config
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(cfg *config.Config) ProviderFactory {
	return &providerFactory{cfg: cfg}
}

// CreateProvider creates a provider based on the specified type
func (f *providerFactory) CreateProvider(ctx context.Context, providerType ProviderType) (provider.Provider, error) {
	switch providerType {
	case GeminiProvider:
		return provider.NewGeminiProvider(ctx, provider.GeminiOptions{
			APIKey: f.cfg.GeminiAPIKey,
			Model:  f.cfg.GeminiModel,
		})
	case OpenAIProvider:
		return provider.NewOpenAIProvider(provider.OpenAIOptions{
			APIKey:  f.cfg.OpenAIAPIKey,
			Model:   f.cfg.OpenAIModel,
			BaseURL: f.cfg.OpenAIBaseURL,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

// storageFactory implements StorageFactory
type storageFactory struct {
	cfg *config.Config
}

// NewStorageFactory creates a new storage factory
func NewStorageFactory(cfg *config.Config) StorageFactory {
	return &storageFactory{cfg: cfg}
}

// CreateRepository builds the HTTP source plus any object stores enabled in config.
// s3:// URLs pass validation only when MinIO is configured.
func (f *storageFactory) CreateRepository() (repository.ImageRepository, error) {
	schemes := []string{"http", "https"}
	var routed []repository.RoutedFetcher

	if f.cfg.Azure.Enabled() {
		azure, err := storage.NewAzureImageFetcher(f.cfg.Azure.Account, f.cfg.Azure.Key)
		if err != nil {
			return nil, fmt.Errorf("azure storage: %w", err)
		}
		routed = append(routed, azure)
	}

	if f.cfg.Minio.Enabled() {
		m := f.cfg.Minio
		minio, err := storage.NewMinioImageFetcher(m.Endpoint, m.Region, m.AccessKey, m.SecretKey, m.UseSSL)
		if err != nil {
			return nil, fmt.Errorf("minio storage: %w", err)
		}
		routed = append(routed, minio)
		schemes = append(schemes, "s3")
	}

	validator := validation.NewURLValidatorWithOptions(schemes, nil)
	fetcher := storage.NewHTTPImageFetcher(f.cfg.ImageFetchTimeout)
	return repository.NewSourceImageRepository(validator, fetcher, routed...), nil
}

// ComponentFactory combines all factories
type ComponentFactory struct {
	ProviderFactory ProviderFactory
	StorageFactory  StorageFactory
}

// NewComponentFactory creates a new component factory
func NewComponentFactory(cfg *config.Config) *ComponentFactory {
	return &ComponentFactory{
		ProviderFactory: NewProviderFactory(cfg),
		StorageFactory:  NewStorageFactory(cfg),
	}
}
