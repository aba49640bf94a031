package display

import (
	"image"
	"runtime"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/anime-shed/image-averager-go/pkg/models"
)

func testComparison(wA, hA, wB, hB int) models.Comparison {
	return models.Comparison{
		Original: image.NewNRGBA(image.Rect(0, 0, wA, hA)),
		Averaged: image.NewNRGBA(image.Rect(0, 0, wB, hB)),
	}
}

func TestConfigureWindow_ExactMargins(t *testing.T) {
	a := test.NewTempApp(t)

	c := testComparison(40, 20, 40, 20)
	layout := ComputeLayout(c.Original.Bounds(), c.Averaged.Bounds(), DefaultMargin)
	content := NewComparisonContent(c, layout)

	w := a.NewWindow("comparison")
	ConfigureWindow(w, content, layout)

	if w.Padded() {
		t.Error("Expected window padding to be disabled")
	}
	if got := w.Canvas().Size(); got != fyne.NewSize(float32(layout.Width), float32(layout.Height)) {
		t.Errorf("Expected canvas %dx%d, got %v", layout.Width, layout.Height, got)
	}

	if len(content.Objects) != 2 {
		t.Fatalf("Expected two images, got %d objects", len(content.Objects))
	}
	left, right := content.Objects[0], content.Objects[1]

	leftPos := content.Position().Add(left.Position())
	if leftPos != fyne.NewPos(15, 15) {
		t.Errorf("Expected left image at (15,15), got %v", leftPos)
	}
	rightPos := content.Position().Add(right.Position())
	if rightPos != fyne.NewPos(70, 15) {
		t.Errorf("Expected right image at (70,15), got %v", rightPos)
	}

	rightMargin := float32(layout.Width) - (rightPos.X + right.Size().Width)
	bottomMargin := float32(layout.Height) - (leftPos.Y + left.Size().Height)
	if rightMargin != 15 || bottomMargin != 15 {
		t.Errorf("Expected 15 right and bottom margins, got %v and %v", rightMargin, bottomMargin)
	}
}

func TestNewComparisonContent_NaturalSize(t *testing.T) {
	test.NewTempApp(t)

	c := testComparison(30, 50, 30, 50)
	layout := ComputeLayout(c.Original.Bounds(), c.Averaged.Bounds(), DefaultMargin)
	content := NewComparisonContent(c, layout)

	for i, obj := range content.Objects {
		if obj.Size() != fyne.NewSize(30, 50) {
			t.Errorf("Image %d: expected 30x50, got %v", i, obj.Size())
		}
	}
}

func TestScreenAvailable(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("display detection only inspects X11 and Wayland variables")
	}

	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	if ScreenAvailable() {
		t.Error("Expected no screen without DISPLAY or WAYLAND_DISPLAY")
	}

	t.Setenv("DISPLAY", ":0")
	if !ScreenAvailable() {
		t.Error("Expected a screen with DISPLAY set")
	}

	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	if !ScreenAvailable() {
		t.Error("Expected a screen with WAYLAND_DISPLAY set")
	}
}
