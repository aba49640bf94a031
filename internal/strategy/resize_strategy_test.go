package strategy

import (
	"image"
	"testing"
)

func TestResizeStrategies(t *testing.T) {
	tests := []struct {
		name           string
		strategy       ResizeStrategy
		expectedName   string
		width, height  int
		expectedWidth  int
		expectedHeight int
	}{
		{"Compat wide", NewCompatResizeStrategy(500), "compat", 600, 300, 500, 250},
		{"Compat tall", NewCompatResizeStrategy(500), "compat", 300, 600, 250, 500},
		{"Compat quirk boundary", NewCompatResizeStrategy(500), "compat", 500, 501, 499, 500},
		{"Fit wide", NewFitResizeStrategy(500), "fit", 600, 300, 500, 250},
		{"Fit tall", NewFitResizeStrategy(500), "fit", 300, 600, 250, 500},
		{"Fit quirk boundary", NewFitResizeStrategy(500), "fit", 500, 501, 499, 500},
		{"Fit small max side", NewFitResizeStrategy(50), "fit", 100, 400, 13, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.strategy.GetStrategyName() != tt.expectedName {
				t.Errorf("Expected name %s, got %s", tt.expectedName, tt.strategy.GetStrategyName())
			}

			img := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))
			resized, err := tt.strategy.Resize(img)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			b := resized.Bounds()
			if b.Dx() != tt.expectedWidth || b.Dy() != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, b.Dx(), b.Dy())
			}
		})
	}
}
