package batch

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidhanko/printcrop/pkg/geometry"
	"github.com/davidhanko/printcrop/pkg/processing"
)

// writeTestImage saves a width x height gradient JPEG and returns its path.
func writeTestImage(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 200, 255})
		}
	}
	path := filepath.Join(dir, name)
	require.NoError(t, processing.New().Save(img, path, "jpg", 90, false))
	return path
}

func testItems(t *testing.T, dir string, count int) []Item {
	t.Helper()
	outDir := filepath.Join(dir, "out")
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		name := string(rune('a'+i)) + ".jpg"
		path := writeTestImage(t, dir, name, 400, 300)
		items = append(items, Item{
			Path:       path,
			SizeTag:    "9x6",
			OutputPath: filepath.Join(outDir, name),
		})
	}
	return items
}

func TestRunBatchSuccess(t *testing.T) {
	dir := t.TempDir()
	items := testItems(t, dir, 3)

	var updates []Progress
	runner := NewRunner(processing.New(), nil, "jpg", 90)
	result := runner.Run(context.Background(), items, func(p Progress) {
		updates = append(updates, p)
	})

	assert.Equal(t, 3, result.Succeeded)
	assert.Empty(t, result.Failed)
	assert.False(t, result.Cancelled)
	require.Len(t, updates, 3)
	assert.Equal(t, 1, updates[0].Index)
	assert.Equal(t, 3, updates[0].Total)

	// Outputs exist at the maximal-fit size for 400x300 and ratio 1.5.
	for _, item := range items {
		img, err := processing.New().Load(item.OutputPath)
		require.NoError(t, err)
		assert.Equal(t, 400, img.Bounds().Dx())
		assert.Equal(t, 266, img.Bounds().Dy())
	}
}

func TestRunBatchManualBoxStillMaximalFitOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, "a.jpg", 400, 300)

	// Manual box drawn smaller than the maximal fit: it sets position and
	// ratio, not output resolution.
	items := []Item{{
		Path:       path,
		CropBox:    &geometry.Rect{X: 40, Y: 30, Width: 150, Height: 100},
		SizeTag:    "9x6",
		OutputPath: filepath.Join(dir, "out", "a.jpg"),
	}}

	runner := NewRunner(processing.New(), nil, "jpg", 90)
	result := runner.Run(context.Background(), items, nil)
	require.Equal(t, 1, result.Succeeded)

	img, err := processing.New().Load(items[0].OutputPath)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 266, img.Bounds().Dy())
}

func TestRunBatchIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	items := testItems(t, dir, 5)

	// Item 3 is not a decodable image.
	badPath := filepath.Join(dir, "broken.jpg")
	require.NoError(t, os.WriteFile(badPath, []byte("not an image"), 0644))
	items[2].Path = badPath

	runner := NewRunner(processing.New(), nil, "jpg", 90)
	result := runner.Run(context.Background(), items, nil)

	assert.Equal(t, 4, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, badPath, result.Failed[0].Path)
	assert.False(t, result.Cancelled)

	// The four good outputs were written.
	written := 0
	for i, item := range items {
		if i == 2 {
			continue
		}
		if _, err := os.Stat(item.OutputPath); err == nil {
			written++
		}
	}
	assert.Equal(t, 4, written)
}

func TestRunBatchInvalidSizeTagIsPerItemFailure(t *testing.T) {
	dir := t.TempDir()
	items := testItems(t, dir, 2)
	items[0].SizeTag = "bogus"

	runner := NewRunner(processing.New(), nil, "jpg", 90)
	result := runner.Run(context.Background(), items, nil)

	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.ErrorIs(t, result.Failed[0].Err, geometry.ErrInvalidFormat)
}

func TestRunBatchCancellation(t *testing.T) {
	dir := t.TempDir()
	items := testItems(t, dir, 5)

	ctx, cancel := context.WithCancel(context.Background())
	runner := NewRunner(processing.New(), nil, "jpg", 90)

	// Cancel after the second item completes.
	result := runner.Run(ctx, items, func(p Progress) {
		if p.Index == 2 {
			cancel()
		}
	})

	assert.True(t, result.Cancelled)
	assert.Equal(t, 2, result.Succeeded)

	// Nothing was written for items 3..5.
	for _, item := range items[2:] {
		_, err := os.Stat(item.OutputPath)
		assert.True(t, os.IsNotExist(err), "unexpected output for %s", item.Path)
	}
}

func TestRunBatchEmpty(t *testing.T) {
	runner := NewRunner(processing.New(), nil, "jpg", 90)
	result := runner.Run(context.Background(), nil, nil)
	assert.Zero(t, result.Succeeded)
	assert.Empty(t, result.Failed)
	assert.False(t, result.Cancelled)
}
