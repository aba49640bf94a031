// Package desktop shows comparisons in a native fyne window.
package desktop

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/anime-shed/image-averager-go/internal/display"
	apperrors "github.com/anime-shed/image-averager-go/internal/errors"
	"github.com/anime-shed/image-averager-go/internal/logger"
	"github.com/anime-shed/image-averager-go/pkg/models"

	"github.com/sirupsen/logrus"
)

// WindowSink opens a fixed-size native window. Show runs the toolkit event
// loop and returns when the window is closed, so it must be called from the
// main goroutine.
type WindowSink struct {
	title  string
	margin int
}

// NewWindowSink creates a window sink
func NewWindowSink(title string, margin int) *WindowSink {
	return &WindowSink{title: title, margin: margin}
}

func (s *WindowSink) Show(c models.Comparison) (err error) {
	if c.Original == nil || c.Averaged == nil {
		return apperrors.NewDisplayError("nothing to display", nil)
	}

	// without a screen the toolkit exits the process instead of returning
	if !display.ScreenAvailable() {
		return apperrors.NewDisplayError("no display available", nil)
	}

	defer func() {
		if r := recover(); r != nil {
			err = apperrors.NewDisplayError("failed to open window", fmt.Errorf("%v", r))
		}
	}()

	layout := display.ComputeLayout(c.Original.Bounds(), c.Averaged.Bounds(), s.margin)

	logger.WithFields(logrus.Fields{
		"title":  s.title,
		"width":  layout.Width,
		"height": layout.Height,
		"color":  c.Average.Hex(),
	}).Debug("Opening comparison window")

	a := app.New()
	w := a.NewWindow(s.title)
	display.ConfigureWindow(w, display.NewComparisonContent(c, layout), layout)
	w.SetMaster()
	w.ShowAndRun()

	return nil
}
