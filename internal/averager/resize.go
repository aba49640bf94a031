package averager

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	apperrors "github.com/anime-shed/image-averager-go/internal/errors"
)

// DefaultMaxSide is the longest side an image keeps after resizing
const DefaultMaxSide = 500

// Transpose mirrors img across its main diagonal: output (x, y) is input (y, x).
func Transpose(img image.Image) *image.NRGBA {
	return imaging.Transpose(img)
}

// Resize shrinks img so that its width is at most maxSide when the image is
// judged wide, keeping the aspect ratio. An image is judged wide when w/h >= 1
// with integer division; any other image is transposed, resized as a wide
// image and transposed back. Images that already fit are returned unchanged.
func Resize(img image.Image, maxSide int) (image.Image, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, apperrors.NewInvalidDimensionsError(w, h)
	}

	if w/h >= 1 {
		if w > maxSide {
			ratio := float64(maxSide) / float64(w)
			return scale(img, scaledDimension(w, ratio), scaledDimension(h, ratio)), nil
		}
		return img, nil
	}

	resized, err := Resize(Transpose(img), maxSide)
	if err != nil {
		return nil, err
	}
	return Transpose(resized), nil
}

// ScaleToFit shrinks img so that its longer side is at most maxSide,
// branching once on w >= h. Images that already fit are returned unchanged.
func ScaleToFit(img image.Image, maxSide int) (image.Image, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, apperrors.NewInvalidDimensionsError(w, h)
	}

	longest := h
	if w >= h {
		longest = w
	}
	if longest <= maxSide {
		return img, nil
	}

	ratio := float64(maxSide) / float64(longest)
	return scale(img, scaledDimension(w, ratio), scaledDimension(h, ratio)), nil
}

// scaledDimension rounds to the nearest integer. Extreme aspect ratios would
// otherwise round the short side down to zero.
func scaledDimension(size int, ratio float64) int {
	scaled := int(math.Round(float64(size) * ratio))
	if scaled < 1 {
		return 1
	}
	return scaled
}

// scale resamples without anti-aliasing
func scale(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
