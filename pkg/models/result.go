package models

import "image"

// AveragedResult is an image of the same size as its input, filled with the input's average color
type AveragedResult struct {
	Source  Source
	Average Color
	Image   image.Image
}

// Width of the averaged image
func (r *AveragedResult) Width() int {
	return r.Image.Bounds().Dx()
}

// Height of the averaged image
func (r *AveragedResult) Height() int {
	return r.Image.Bounds().Dy()
}

// Comparison holds the two images shown side by side.
// Original is the resized input and Averaged has the same dimensions.
type Comparison struct {
	Source   Source
	Original image.Image
	Averaged image.Image
	Average  Color
}
