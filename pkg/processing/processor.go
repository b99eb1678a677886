// Package processing handles bitmap I/O and the final crop-and-resample step
// that turns a source photo plus a crop box into an exact-dimension print
// output.
package processing

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/davidhanko/printcrop/pkg/geometry"
)

// DefaultJPEGQuality is the quality used for final print encodes.
const DefaultJPEGQuality = 95

// Processor decodes, encodes and resamples photographs. The zero value is
// not usable; construct with New.
type Processor struct {
	resampler imaging.ResampleFilter
}

// New returns a Processor using Lanczos resampling, the filter used for all
// print output.
func New() *Processor {
	return &Processor{resampler: imaging.Lanczos}
}

// Load opens an image from a file path. Formats registered with the imaging
// package (jpg, png, gif, tiff, bmp) are tried first, then WebP.
func (p *Processor) Load(path string) (image.Image, error) {
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// Decode decodes an image from raw bytes, trying the registered decoders
// first and WebP as a fallback.
func (p *Processor) Decode(data []byte) (image.Image, error) {
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("image: unknown or unsupported format")
}

// Save writes an image to path in the given format. Quality applies to jpg
// and webp; lossless applies to webp only.
func (p *Processor) Save(img image.Image, path, format string, quality int, lossless bool) error {
	switch strings.ToLower(format) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts := &webp.Options{Lossless: lossless, Quality: float32(quality)}
		return webp.Encode(f, img, opts)
	case "png":
		return imaging.Save(img, path)
	default: // jpg/jpeg
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	}
}

// CropResize extracts crop from img and resamples it to exactly targetWidth x
// targetHeight. The same inputs always produce the same output dimensions.
// The crop rectangle is intersected with the image bounds; an empty
// intersection is an error.
func (p *Processor) CropResize(img image.Image, crop geometry.Rect, targetWidth, targetHeight int) (image.Image, error) {
	if targetWidth <= 0 || targetHeight <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", targetWidth, targetHeight)
	}

	rect := crop.ToImageRect().Intersect(img.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("crop box %+v lies outside the image", crop)
	}

	cropped := imaging.Crop(img, rect)
	return imaging.Resize(cropped, targetWidth, targetHeight, p.resampler), nil
}
