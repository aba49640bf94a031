// Package averager computes the average color of an image and the
// proportional downscale applied before an image is displayed.
package averager

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	apperrors "github.com/anime-shed/image-averager-go/internal/errors"
	"github.com/anime-shed/image-averager-go/pkg/models"
)

// ComputeAverageColor returns the per-channel arithmetic mean of every pixel.
// Each channel is divided with integer division, so fractions are truncated.
// Alpha is ignored: channels are read non-premultiplied.
func ComputeAverageColor(img image.Image) (models.Color, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return models.Color{}, apperrors.NewInvalidDimensionsError(width, height)
	}

	var totalR, totalG, totalB uint64

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := nrgba.PixOffset(bounds.Min.X, y)
			row := nrgba.Pix[i : i+width*4]
			for x := 0; x < len(row); x += 4 {
				totalR += uint64(row[x])
				totalG += uint64(row[x+1])
				totalB += uint64(row[x+2])
			}
		}
	} else {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				totalR += uint64(c.R)
				totalG += uint64(c.G)
				totalB += uint64(c.B)
			}
		}
	}

	pixelCount := uint64(width) * uint64(height)
	return models.Color{
		R: uint8(totalR / pixelCount),
		G: uint8(totalG / pixelCount),
		B: uint8(totalB / pixelCount),
	}, nil
}

// BuildUniformImage returns an opaque width x height image where every pixel is c.
func BuildUniformImage(c models.Color, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, apperrors.NewInvalidDimensionsError(width, height)
	}
	return imaging.New(width, height, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}), nil
}

// AverageImage builds an image with the dimensions of img filled with its average color.
func AverageImage(img image.Image) (*image.NRGBA, models.Color, error) {
	avg, err := ComputeAverageColor(img)
	if err != nil {
		return nil, models.Color{}, err
	}

	bounds := img.Bounds()
	uniform, err := BuildUniformImage(avg, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, models.Color{}, err
	}
	return uniform, avg, nil
}
