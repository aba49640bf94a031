package container

import (
	"fmt"

	"github.com/anime-shed/image-averager-go/internal/config"
	"github.com/anime-shed/image-averager-go/internal/display"
	"github.com/anime-shed/image-averager-go/internal/display/desktop"
	"github.com/anime-shed/image-averager-go/internal/factory"
	"github.com/anime-shed/image-averager-go/internal/logger"
	"github.com/anime-shed/image-averager-go/internal/observer"
	"github.com/anime-shed/image-averager-go/internal/repository"
	"github.com/anime-shed/image-averager-go/internal/service"
	"github.com/anime-shed/image-averager-go/internal/strategy"
	"github.com/anime-shed/image-averager-go/pkg/validation"
)

// Container holds all application dependencies
type Container struct {
	config           *config.Config
	imageRepository  repository.ImageRepository
	resizeStrategy   strategy.ResizeStrategy
	sink             display.Sink
	events           *observer.EventPublisher
	stats            *observer.StatsObserver
	averagingService service.AveragingService
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithSink(cfg, desktop.NewWindowSink(cfg.WindowTitle, cfg.DisplayMargin))
}

// NewContainerWithSink builds the dependency graph around a caller-supplied sink
func NewContainerWithSink(cfg *config.Config, sink display.Sink) (*Container, error) {
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	components := factory.NewComponentFactory(cfg)

	localFetcher, err := components.StorageFactory.CreateStorage(factory.LocalStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to create local storage: %w", err)
	}
	httpFetcher, err := components.StorageFactory.CreateStorage(factory.HTTPStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to create http storage: %w", err)
	}

	validator := validation.NewSourceValidator()
	if len(cfg.AllowedURLHosts) > 0 {
		validator = validation.NewSourceValidatorWithOptions(validation.DefaultSchemes, cfg.AllowedURLHosts)
	}

	imageRepository := repository.NewSourceImageRepository(validator, localFetcher, httpFetcher)
	if cfg.AzureEnabled() {
		blobFetcher, err := components.StorageFactory.CreateStorage(factory.AzureStorage)
		if err != nil {
			return nil, fmt.Errorf("failed to create azure storage: %w", err)
		}
		imageRepository.WithBlobFetcher(cfg.AzureBlobHost(), blobFetcher)
		logger.WithField("host", cfg.AzureBlobHost()).Debug("Azure blob reads enabled")
	}

	resizeStrategy, err := components.StrategyFactory.CreateResizeStrategy(cfg.ResizeMode)
	if err != nil {
		return nil, err
	}

	stats := observer.NewStatsObserver()
	events := observer.NewEventPublisher()
	events.Subscribe(observer.NewLoggingObserver(logger.Logger))
	events.Subscribe(stats)

	return &Container{
		config:           cfg,
		imageRepository:  imageRepository,
		resizeStrategy:   resizeStrategy,
		sink:             sink,
		events:           events,
		stats:            stats,
		averagingService: service.NewAveragingService(imageRepository, resizeStrategy, sink, events),
	}, nil
}

// Service returns the averaging service
func (c *Container) Service() service.AveragingService {
	return c.averagingService
}

// Stats returns the pipeline counters collected so far
func (c *Container) Stats() map[string]interface{} {
	return c.stats.GetStats()
}
