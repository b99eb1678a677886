package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewMapperScalesAndOffsets(t *testing.T) {
	// 4000x3000 source shown as a 2000x1500 bitmap centered in 2200x1600.
	m := NewPreviewMapper(4000, 3000, 2000, 1500, 2200, 1600)

	assert.Equal(t, Rect{X: 100, Y: 50, Width: 2000, Height: 1500}, m.PreviewBounds())

	src := Rect{X: 400, Y: 600, Width: 1000, Height: 800}
	preview := m.ToPreview(src)
	assert.Equal(t, Rect{X: 300, Y: 350, Width: 500, Height: 400}, preview)

	back := m.ToSource(preview)
	assert.Equal(t, src, back)
}

func TestPreviewMapperNoLetterbox(t *testing.T) {
	// Bitmap exactly fills the display; offsets must be zero.
	m := NewPreviewMapper(1000, 500, 500, 250, 500, 250)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 500, Height: 250}, m.PreviewBounds())
	assert.Equal(t, Rect{X: 50, Y: 25, Width: 100, Height: 50},
		m.ToPreview(Rect{X: 100, Y: 50, Width: 200, Height: 100}))
}

func TestPreviewMapperNonUniformScale(t *testing.T) {
	// Independent X/Y scales: bitmap squashed vertically relative to source.
	m := NewPreviewMapper(1000, 1000, 500, 250, 500, 250)

	preview := m.ToPreview(Rect{X: 200, Y: 400, Width: 400, Height: 400})
	assert.Equal(t, Rect{X: 100, Y: 100, Width: 200, Height: 100}, preview)

	back := m.ToSource(preview)
	assert.Equal(t, Rect{X: 200, Y: 400, Width: 400, Height: 400}, back)
}

// Round-trip property: for rectangles inside the source bounds, mapping to
// preview space and back reproduces the original within one pixel per field
// at half scale.
func TestPreviewMapperRoundTrip(t *testing.T) {
	m := NewPreviewMapper(4000, 3000, 2000, 1500, 2100, 1500)

	rects := []Rect{
		{X: 0, Y: 0, Width: 4000, Height: 3000},
		{X: 0, Y: 0, Width: 1, Height: 1},
		{X: 3999, Y: 2999, Width: 1, Height: 1},
		{X: 13, Y: 977, Width: 333, Height: 101},
		{X: 1234, Y: 567, Width: 890, Height: 1011},
		{X: 2000, Y: 1500, Width: 400, Height: 266},
	}

	for _, r := range rects {
		back := m.ToSource(m.ToPreview(r))
		assert.InDelta(t, r.X, back.X, 1, "x of %+v", r)
		assert.InDelta(t, r.Y, back.Y, 1, "y of %+v", r)
		assert.InDelta(t, r.Width, back.Width, 1, "width of %+v", r)
		assert.InDelta(t, r.Height, back.Height, 1, "height of %+v", r)
	}
}
