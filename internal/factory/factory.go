package factory

import (
	"fmt"

	"github.com/anime-shed/image-averager-go/internal/config"
	"github.com/anime-shed/image-averager-go/internal/storage"
	"github.com/anime-shed/image-averager-go/internal/strategy"
)

// StorageType represents different types of storage backends
type StorageType string

const (
	// HTTPStorage for plain HTTP(S) downloads
	HTTPStorage StorageType = "http"
	// AzureStorage for authenticated Azure blob reads
	AzureStorage StorageType = "azure"
	// LocalStorage for local file system
	LocalStorage StorageType = "local"
)

// StorageFactory creates storage implementations
type StorageFactory interface {
	CreateStorage(storageType StorageType) (storage.ImageFetcher, error)
}

// StrategyFactory creates resize strategies
type StrategyFactory interface {
	CreateResizeStrategy(mode string) (strategy.ResizeStrategy, error)
}

// storageFactory implements StorageFactory
type storageFactory struct {
	cfg *config.Config
}

// NewStorageFactory creates a new storage factory
func NewStorageFactory(cfg *config.Config) StorageFactory {
	return &storageFactory{cfg: cfg}
}

// CreateStorage creates a storage implementation based on the specified type
func (f *storageFactory) CreateStorage(storageType StorageType) (storage.ImageFetcher, error) {
	switch storageType {
	case HTTPStorage:
		return storage.NewHTTPImageFetcher(f.cfg.ImageFetchTimeout, f.cfg.MaxImageBytes), nil
	case AzureStorage:
		if !f.cfg.AzureEnabled() {
			return nil, fmt.Errorf("azure storage requires AZURE_STORAGE_ACCOUNT and AZURE_STORAGE_KEY")
		}
		return storage.NewAzureBlobFetcher(f.cfg.AzureAccountName, f.cfg.AzureAccountKey, f.cfg.MaxImageBytes)
	case LocalStorage:
		return storage.NewLocalImageFetcher(), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}

// strategyFactory implements StrategyFactory
type strategyFactory struct {
	maxSide int
}

// NewStrategyFactory creates a resize strategy factory bounded by maxSide
func NewStrategyFactory(maxSide int) StrategyFactory {
	return &strategyFactory{maxSide: maxSide}
}

// CreateResizeStrategy creates a strategy for the given resize mode
func (f *strategyFactory) CreateResizeStrategy(mode string) (strategy.ResizeStrategy, error) {
	switch mode {
	case config.ResizeModeCompat, "":
		return strategy.NewCompatResizeStrategy(f.maxSide), nil
	case config.ResizeModeFit:
		return strategy.NewFitResizeStrategy(f.maxSide), nil
	default:
		return nil, fmt.Errorf("unsupported resize mode: %s", mode)
	}
}

// ComponentFactory combines all factories
type ComponentFactory struct {
	StorageFactory  StorageFactory
	StrategyFactory StrategyFactory
}

// NewComponentFactory creates a new component factory
func NewComponentFactory(cfg *config.Config) *ComponentFactory {
	return &ComponentFactory{
		StorageFactory:  NewStorageFactory(cfg),
		StrategyFactory: NewStrategyFactory(cfg.MaxSide),
	}
}
