package repository

import (
	"context"
	"image"

	"github.com/anime-shed/image-averager-go/pkg/models"
)

// ImageRepository defines the interface for image data access operations
type ImageRepository interface {
	// FetchImage loads and decodes the image a source points to
	FetchImage(ctx context.Context, src models.Source) (image.Image, error)

	// ValidateSource checks a source without reading it
	ValidateSource(src models.Source) error
}
