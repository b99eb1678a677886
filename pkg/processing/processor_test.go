package processing

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidhanko/printcrop/pkg/geometry"
)

// testImage returns a gradient image so crops are visually distinct.
func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 128, 255})
		}
	}
	return img
}

func TestCropResizeExactDimensions(t *testing.T) {
	p := New()
	img := testImage(400, 300)

	out, err := p.CropResize(img, geometry.Rect{X: 50, Y: 50, Width: 300, Height: 200}, 150, 100)
	require.NoError(t, err)

	bounds := out.Bounds()
	assert.Equal(t, 150, bounds.Dx())
	assert.Equal(t, 100, bounds.Dy())
}

func TestCropResizeDeterministic(t *testing.T) {
	p := New()
	img := testImage(400, 300)
	crop := geometry.Rect{X: 10, Y: 20, Width: 360, Height: 240}

	first, err := p.CropResize(img, crop, 180, 120)
	require.NoError(t, err)
	second, err := p.CropResize(img, crop, 180, 120)
	require.NoError(t, err)

	assert.Equal(t, first.Bounds(), second.Bounds())
	assert.Equal(t, first.(*image.NRGBA).Pix, second.(*image.NRGBA).Pix)
}

func TestCropResizeClampsToImage(t *testing.T) {
	p := New()
	img := testImage(400, 300)

	// Box partially outside the image: the intersection is used.
	out, err := p.CropResize(img, geometry.Rect{X: 350, Y: 250, Width: 200, Height: 200}, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())

	// Box entirely outside the image is an error.
	_, err = p.CropResize(img, geometry.Rect{X: 500, Y: 500, Width: 100, Height: 100}, 100, 100)
	assert.Error(t, err)
}

func TestCropResizeRejectsInvalidTarget(t *testing.T) {
	p := New()
	img := testImage(100, 100)

	_, err := p.CropResize(img, geometry.Rect{Width: 50, Height: 50}, 0, 10)
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	p := New()
	dir := t.TempDir()
	img := testImage(120, 80)

	for _, format := range []string{"jpg", "png", "webp"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "out."+format)
			require.NoError(t, p.Save(img, path, format, 90, false))

			loaded, err := p.Load(path)
			require.NoError(t, err)
			assert.Equal(t, 120, loaded.Bounds().Dx())
			assert.Equal(t, 80, loaded.Bounds().Dy())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	p := New()
	_, err := p.Load(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}
