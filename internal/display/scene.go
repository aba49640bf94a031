package display

import (
	"image"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/anime-shed/image-averager-go/pkg/models"
)

// NewComparisonContent places the original at layout.Left and the averaged
// image at layout.Right, both at their natural pixel size.
func NewComparisonContent(c models.Comparison, layout Layout) *fyne.Container {
	return container.NewWithoutLayout(
		placeImage(c.Original, layout.Left),
		placeImage(c.Averaged, layout.Right),
	)
}

// ConfigureWindow gives w exactly the layout size. The window's own content
// padding is turned off so the layout margins are the only gaps.
func ConfigureWindow(w fyne.Window, content fyne.CanvasObject, layout Layout) {
	w.SetPadded(false)
	w.SetContent(content)
	w.Resize(fyne.NewSize(float32(layout.Width), float32(layout.Height)))
	w.SetFixedSize(true)
}

// ScreenAvailable reports whether a window can be opened. Only X11 and
// Wayland systems are checked; elsewhere a screen is assumed.
func ScreenAvailable() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	default:
		return true
	}
}

func placeImage(img image.Image, at image.Rectangle) *canvas.Image {
	obj := canvas.NewImageFromImage(img)
	obj.FillMode = canvas.ImageFillOriginal
	obj.ScaleMode = canvas.ImageScalePixels
	obj.Move(fyne.NewPos(float32(at.Min.X), float32(at.Min.Y)))
	obj.Resize(fyne.NewSize(float32(at.Dx()), float32(at.Dy())))
	return obj
}
