package averager

import (
	"image"
	"image/color"
	"testing"

	apperrors "github.com/anime-shed/image-averager-go/internal/errors"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// createSplitImage paints the first half of the long axis red and the rest blue
func createSplitImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			first := x < width/2
			if height > width {
				first = y < height/2
			}
			if first {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}
	return img
}

func sameRGB(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar == br && ag == bg && ab == bb
}

func TestTranspose_SwapsCoordinates(t *testing.T) {
	img := createCoordinateImage(5, 3)
	transposed := Transpose(img)

	if transposed.Bounds().Dx() != 3 || transposed.Bounds().Dy() != 5 {
		t.Fatalf("Expected 3x5, got %v", transposed.Bounds())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 3; x++ {
			if got, want := transposed.NRGBAAt(x, y), img.NRGBAAt(y, x); got != want {
				t.Errorf("Pixel (%d,%d) = %+v, expected %+v", x, y, got, want)
			}
		}
	}
}

func TestTranspose_RoundTrip(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 9}, {9, 1}, {13, 7}, {20, 20}}
	for _, size := range sizes {
		img := createCoordinateImage(size[0], size[1])
		back := Transpose(Transpose(img))

		if back.Bounds() != img.Bounds() {
			t.Fatalf("Expected bounds %v, got %v", img.Bounds(), back.Bounds())
		}
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				if back.NRGBAAt(x, y) != img.NRGBAAt(x, y) {
					t.Fatalf("Pixel (%d,%d) changed after double transpose", x, y)
				}
			}
		}
	}
}

func TestResize_Dimensions(t *testing.T) {
	tests := []struct {
		name                          string
		width, height                 int
		expectedWidth, expectedHeight int
	}{
		{"Wide image is scaled", 600, 300, 500, 250},
		{"Tall image goes through transpose path", 300, 600, 250, 500},
		{"Nearly square tall image", 500, 501, 499, 500},
		{"Nearly square wide image", 501, 500, 500, 499},
		{"Square image over the limit", 1000, 1000, 500, 500},
		{"Wide image within the limit", 500, 200, 500, 200},
		{"Tall image within the limit", 200, 500, 200, 500},
		{"Small image", 40, 30, 40, 30},
		{"Rounding to nearest", 700, 333, 500, 238},
		{"Thin strip keeps one row", 3000, 1, 500, 1},
		{"Thin column keeps one column", 1, 3000, 1, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))
			resized, err := Resize(img, DefaultMaxSide)
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

func TestResize_ReturnsInputWhenItFits(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	resized, err := Resize(img, DefaultMaxSide)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resized != image.Image(img) {
		t.Error("Expected the same image to be returned")
	}
}

func TestResize_NeverGrows(t *testing.T) {
	for w := 1; w <= 1200; w += 149 {
		for h := 1; h <= 1200; h += 131 {
			img := image.NewRGBA(image.Rect(0, 0, w, h))
			resized, err := Resize(img, DefaultMaxSide)
			if err != nil {
				t.Fatalf("Unexpected error for %dx%d: %v", w, h, err)
			}
			b := resized.Bounds()
			if b.Dx() > w || b.Dy() > h {
				t.Errorf("%dx%d grew to %dx%d", w, h, b.Dx(), b.Dy())
			}
			if b.Dx() > DefaultMaxSide || b.Dy() > DefaultMaxSide {
				t.Errorf("%dx%d resized to %dx%d, over the limit", w, h, b.Dx(), b.Dy())
			}
		}
	}
}

func TestResize_NearestNeighbourContent(t *testing.T) {
	wide, err := Resize(createSplitImage(1000, 500), DefaultMaxSide)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !sameRGB(wide.At(0, 0), red) || !sameRGB(wide.At(499, 249), blue) {
		t.Error("Expected wide image halves to stay red and blue")
	}

	tall, err := Resize(createSplitImage(500, 1000), DefaultMaxSide)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tall.Bounds().Dx() != 250 || tall.Bounds().Dy() != 500 {
		t.Fatalf("Expected 250x500, got %v", tall.Bounds())
	}
	if !sameRGB(tall.At(0, 0), red) || !sameRGB(tall.At(249, 499), blue) {
		t.Error("Expected tall image halves to stay red and blue after transposing back")
	}
}

func TestResize_CustomMaxSide(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 150))
	resized, err := Resize(img, 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resized.Bounds().Dx() != 100 || resized.Bounds().Dy() != 50 {
		t.Errorf("Expected 100x50, got %v", resized.Bounds())
	}
}

func TestResize_InvalidDimensions(t *testing.T) {
	_, err := Resize(image.NewRGBA(image.Rect(0, 0, 10, 0)), DefaultMaxSide)
	if !apperrors.IsType(err, apperrors.ErrorTypeInvalidDimensions) {
		t.Errorf("Expected invalid dimensions error, got: %v", err)
	}
}

func TestScaleToFit_MatchesResizeDimensions(t *testing.T) {
	sizes := [][2]int{{600, 300}, {300, 600}, {500, 501}, {501, 500}, {1000, 1000}, {499, 20}, {3000, 1}}
	for _, size := range sizes {
		img := image.NewRGBA(image.Rect(0, 0, size[0], size[1]))

		compat, err := Resize(img, DefaultMaxSide)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		fit, err := ScaleToFit(img, DefaultMaxSide)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if compat.Bounds() != fit.Bounds() {
			t.Errorf("%dx%d: Resize gave %v, ScaleToFit gave %v", size[0], size[1], compat.Bounds(), fit.Bounds())
		}
	}
}

func TestScaleToFit_NearestNeighbourContent(t *testing.T) {
	tall, err := ScaleToFit(createSplitImage(500, 1000), DefaultMaxSide)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !sameRGB(tall.At(0, 0), red) || !sameRGB(tall.At(249, 499), blue) {
		t.Error("Expected tall image halves to stay red and blue")
	}
}

func TestScaleToFit_InvalidDimensions(t *testing.T) {
	_, err := ScaleToFit(image.NewRGBA(image.Rect(0, 0, 0, 10)), DefaultMaxSide)
	if !apperrors.IsType(err, apperrors.ErrorTypeInvalidDimensions) {
		t.Errorf("Expected invalid dimensions error, got: %v", err)
	}
}
