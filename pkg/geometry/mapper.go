package geometry

import "math"

// PreviewMapper converts rectangles between the source image's native pixel
// space and a preview space: a scaled bitmap of the source, letterboxed
// (centered) inside a fixed display area when their aspect ratios differ.
//
// X and Y carry independent scale factors so a preview bitmap that was not
// scaled uniformly still maps correctly. The mapper is rebuilt whenever the
// preview bitmap changes size; it is derived state and never persisted.
type PreviewMapper struct {
	scaleX  float64
	scaleY  float64
	offsetX int
	offsetY int

	bitmapWidth  int
	bitmapHeight int
}

// NewPreviewMapper builds a mapper for a source image rendered as a
// bitmapWidth x bitmapHeight preview centered inside a displayWidth x
// displayHeight area. The offsets are zero when the bitmap fills the display.
func NewPreviewMapper(sourceWidth, sourceHeight, bitmapWidth, bitmapHeight, displayWidth, displayHeight int) *PreviewMapper {
	return &PreviewMapper{
		scaleX:       float64(bitmapWidth) / float64(sourceWidth),
		scaleY:       float64(bitmapHeight) / float64(sourceHeight),
		offsetX:      (displayWidth - bitmapWidth) / 2,
		offsetY:      (displayHeight - bitmapHeight) / 2,
		bitmapWidth:  bitmapWidth,
		bitmapHeight: bitmapHeight,
	}
}

// PreviewBounds returns the area of the display actually covered by the
// preview bitmap, in preview coordinates. Crop gestures are constrained to
// this rectangle, never to the letterbox margins.
func (m *PreviewMapper) PreviewBounds() Rect {
	return Rect{X: m.offsetX, Y: m.offsetY, Width: m.bitmapWidth, Height: m.bitmapHeight}
}

// ToPreview maps a source-space rectangle into preview space. Position is
// scaled and shifted by the letterbox offset; width and height are only
// scaled.
func (m *PreviewMapper) ToPreview(r Rect) Rect {
	return Rect{
		X:      round(float64(r.X)*m.scaleX) + m.offsetX,
		Y:      round(float64(r.Y)*m.scaleY) + m.offsetY,
		Width:  round(float64(r.Width) * m.scaleX),
		Height: round(float64(r.Height) * m.scaleY),
	}
}

// ToSource maps a preview-space rectangle back into source space: the
// letterbox offset is removed from the position first, then all fields are
// divided by the scale. ToSource(ToPreview(r)) reproduces r up to the
// rounding error amplified by the inverse scale, at most one source pixel
// per field for previews at half scale or larger.
func (m *PreviewMapper) ToSource(r Rect) Rect {
	return Rect{
		X:      round(float64(r.X-m.offsetX) / m.scaleX),
		Y:      round(float64(r.Y-m.offsetY) / m.scaleY),
		Width:  round(float64(r.Width) / m.scaleX),
		Height: round(float64(r.Height) / m.scaleY),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
