package strategy

import (
	"image"

	"github.com/anime-shed/image-averager-go/internal/averager"
)

// ResizeStrategy decides how an image is shrunk before display
type ResizeStrategy interface {
	Resize(img image.Image) (image.Image, error)
	GetStrategyName() string
}

// CompatResizeStrategy reproduces the reference tool: the wide/tall decision
// uses integer division and tall images are handled by transposing.
type CompatResizeStrategy struct {
	maxSide int
}

// NewCompatResizeStrategy creates a new compat resize strategy
func NewCompatResizeStrategy(maxSide int) ResizeStrategy {
	return &CompatResizeStrategy{maxSide: maxSide}
}

// Resize shrinks the image with averager.Resize
func (s *CompatResizeStrategy) Resize(img image.Image) (image.Image, error) {
	return averager.Resize(img, s.maxSide)
}

// GetStrategyName returns the strategy name
func (s *CompatResizeStrategy) GetStrategyName() string {
	return "compat"
}

// FitResizeStrategy scales the longer side down in a single pass
type FitResizeStrategy struct {
	maxSide int
}

// NewFitResizeStrategy creates a new fit resize strategy
func NewFitResizeStrategy(maxSide int) ResizeStrategy {
	return &FitResizeStrategy{maxSide: maxSide}
}

// Resize shrinks the image with averager.ScaleToFit
func (s *FitResizeStrategy) Resize(img image.Image) (image.Image, error) {
	return averager.ScaleToFit(img, s.maxSide)
}

// GetStrategyName returns the strategy name
func (s *FitResizeStrategy) GetStrategyName() string {
	return "fit"
}
