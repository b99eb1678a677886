package geometry

// Corner identifies which handle of a crop box a resize gesture grabbed.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns the corner name as used in logs and test output.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

// Corners lists all four resize handles.
func Corners() []Corner {
	return []Corner{TopLeft, TopRight, BottomLeft, BottomRight}
}

// Translate shifts rect by (dx, dy) and clamps the result so it stays fully
// inside bounds. Only the position is ever adjusted; translation never
// changes the rectangle's size, so a drag past an edge slides along it.
func Translate(rect Rect, dx, dy int, bounds Rect) Rect {
	moved := rect
	moved.X += dx
	moved.Y += dy
	return clampPosition(moved, bounds)
}

// Resize applies a corner drag of (dx, dy) to start, preserving the target
// aspect ratio, keeping the corner opposite the dragged one fixed, enforcing
// the minimum size, and containing the result in bounds.
//
// The raw candidate grows width and height independently from the drag
// deltas (sign depends on the corner), then the limiting dimension wins: if
// the height derived from the candidate width fits under the candidate
// height, width limits; otherwise height does. The locked result never
// exceeds the raw candidate in either dimension. Width limits on exact ties.
func Resize(corner Corner, start Rect, dx, dy int, ratio float64, bounds Rect, minSize int) Rect {
	var widthDelta, heightDelta int
	switch corner {
	case TopLeft:
		widthDelta, heightDelta = -dx, -dy
	case TopRight:
		widthDelta, heightDelta = dx, -dy
	case BottomLeft:
		widthDelta, heightDelta = -dx, dy
	case BottomRight:
		widthDelta, heightDelta = dx, dy
	}

	rawWidth := max(minSize, start.Width+widthDelta)
	rawHeight := max(minSize, start.Height+heightDelta)
	width, height := lockRatio(rawWidth, rawHeight, ratio)

	resized := anchorOpposite(corner, start, width, height)
	return constrainResized(resized, corner, ratio, bounds, minSize)
}

// lockRatio reduces a raw candidate box to the exact target ratio by picking
// the limiting dimension and deriving the other from it.
func lockRatio(rawWidth, rawHeight int, ratio float64) (int, int) {
	heightForWidth := round(float64(rawWidth) / ratio)
	if heightForWidth <= rawHeight {
		return rawWidth, heightForWidth
	}
	return round(float64(rawHeight) * ratio), rawHeight
}

// anchorOpposite positions a width x height box so that the corner opposite
// the dragged one coincides with that corner of start.
func anchorOpposite(corner Corner, start Rect, width, height int) Rect {
	r := Rect{Width: width, Height: height}
	switch corner {
	case TopLeft:
		r.X, r.Y = start.Right()-width, start.Bottom()-height
	case TopRight:
		r.X, r.Y = start.X, start.Bottom()-height
	case BottomLeft:
		r.X, r.Y = start.Right()-width, start.Y
	case BottomRight:
		r.X, r.Y = start.X, start.Y
	}
	return r
}

// constrainResized enforces the minimum size and bounds containment on a
// ratio-locked rectangle. Minimum size is restored first by growing the
// smaller dimension and rederiving the other; if the box then exceeds the
// bounds it is shrunk with the same fit-by-width/fit-by-height selection as
// LargestFit. Containment wins over minimum size when the bounds themselves
// are smaller than the minimum box. The position is clamped last, without
// altering the size.
func constrainResized(r Rect, corner Corner, ratio float64, bounds Rect, minSize int) Rect {
	if r.Width < minSize || r.Height < minSize {
		width, height := minSizeDims(ratio, minSize)
		r = anchorOpposite(corner, r, width, height)
	}
	if r.Width > bounds.Width || r.Height > bounds.Height {
		width, height := LargestFit(ratio, bounds.Width, bounds.Height)
		r = anchorOpposite(corner, r, width, height)
	}
	return clampPosition(r, bounds)
}

// minSizeDims returns the smallest box of the given ratio whose shorter
// dimension equals minSize.
func minSizeDims(ratio float64, minSize int) (int, int) {
	if ratio >= 1 {
		return round(float64(minSize) * ratio), minSize
	}
	return minSize, round(float64(minSize) / ratio)
}

// clampPosition moves r the minimum distance needed to lie inside bounds.
// Right and bottom overruns reposition by the rectangle's own size rather
// than truncating it.
func clampPosition(r Rect, bounds Rect) Rect {
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.Width
	}
	if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.Height
	}
	return r
}
