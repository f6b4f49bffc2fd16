package container

import (
	"context"
	"fmt"
	"net/http"

	"go-greenery-relay/internal/config"
	"go-greenery-relay/internal/factory"
	"go-greenery-relay/internal/logger"
	"go-greenery-relay/internal/observer"
	"go-greenery-relay/internal/provider"
	"go-greenery-relay/internal/repository"
	"go-greenery-relay/internal/service"
	"go-greenery-relay/internal/strategy"
	"go-greenery-relay/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config          *config.Config
	imageRepository repository.ImageRepository
	provider        provider.Provider
	events          *observer.EventPublisher
	metrics         *observer.MetricsObserver
	analysisService service.AnalysisService
	handler         http.Handler
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	components := factory.NewComponentFactory(cfg)

	imageRepository, err := components.StorageFactory.CreateRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to create image repository: %w", err)
	}

	p, err := components.ProviderFactory.CreateProvider(ctx, factory.ProviderType(cfg.Provider))
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	metrics := observer.NewMetricsObserver()
	events := observer.NewEventPublisher()
	events.Subscribe(observer.NewLoggingObserver(logger.Logger))
	events.Subscribe(metrics)

	analysisService := service.NewAnalysisService(service.Options{
		Repository:      imageRepository,
		Provider:        p,
		Strategy:        strategy.ForMode(cfg.StrictSchema),
		Events:          events,
		FetchTimeout:    cfg.ImageFetchTimeout,
		AnalysisTimeout: cfg.AnalysisTimeout,
	})
	handler := transport.NewHandler(analysisService, metrics, cfg)

	return &Container{
		config:          cfg,
		imageRepository: imageRepository,
		provider:        p,
		events:          events,
		metrics:         metrics,
		analysisService: analysisService,
		handler:         handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Provider returns the inference provider in use
func (c *Container) Provider() provider.Provider {
	return c.provider
}

// Close waits for pending event notifications
func (c *Container) Close() {
	c.events.Wait()
}
