// Package display shows the resized original next to its averaged image.
package display

import "image"

// DefaultMargin is the gap around and between the two images
const DefaultMargin = 15

// Layout places two images side by side with margin on every side and between them
type Layout struct {
	Width  int
	Height int
	Left   image.Rectangle
	Right  image.Rectangle
}

// ComputeLayout lays out a on the left and b on the right. Both images keep
// their natural size and are aligned to the top margin.
func ComputeLayout(a, b image.Rectangle, margin int) Layout {
	wA, hA := a.Dx(), a.Dy()
	wB, hB := b.Dx(), b.Dy()

	left := image.Rect(margin, margin, margin+wA, margin+hA)
	rightX := 2*margin + wA
	right := image.Rect(rightX, margin, rightX+wB, margin+hB)

	return Layout{
		Width:  3*margin + wA + wB,
		Height: 2*margin + max(hA, hB),
		Left:   left,
		Right:  right,
	}
}

// Size returns the panel size as a rectangle at the origin
func (l Layout) Size() image.Rectangle {
	return image.Rect(0, 0, l.Width, l.Height)
}
