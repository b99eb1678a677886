// Package geometry implements the crop geometry used throughout printcrop:
// print size parsing, maximal-fit calculation, preview/source coordinate
// mapping, and the constrained drag and corner-resize gestures that keep an
// interactive crop box at a fixed aspect ratio inside its image.
//
// All functions are pure and operate on integer pixel rectangles. The caller
// decides which coordinate space (source image or scaled preview) a rectangle
// lives in; the PreviewMapper converts between the two.
package geometry

import "image"

// Rect is an axis-aligned rectangle in integer pixel coordinates.
// Width and Height are always positive for a valid crop box.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the exclusive right edge coordinate.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge coordinate.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// AspectRatio returns width divided by height, or 0 for an empty rectangle.
func (r Rect) AspectRatio() float64 {
	if r.Height == 0 {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}

// ContainedIn reports whether r lies fully inside bounds.
func (r Rect) ContainedIn(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y &&
		r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

// ToImageRect converts to the standard library representation.
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// FromImageRect converts from the standard library representation.
func FromImageRect(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}
