// Package suggest produces automatic crop box suggestions by delegating to a
// saliency engine. The engine is a black box that, given a bitmap and a
// target size, returns the most interesting region of exactly that size; this
// package only prepares its input (downsampling large sources) and rescales
// its output back to full resolution.
package suggest

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
	"github.com/muesli/smartcrop/nfnt"

	"github.com/davidhanko/printcrop/pkg/geometry"
)

// DefaultAnalysisCap bounds the long side of bitmaps handed to the saliency
// engine. Sources larger than this are downsampled before analysis and the
// resulting box is rescaled, which keeps suggestion latency flat regardless
// of source resolution.
const DefaultAnalysisCap = 600

// Engine finds the most salient region of exactly the requested size within
// an image. Implementations must be safe for concurrent use; a failure is
// recoverable and callers fall back to a centered crop.
type Engine interface {
	Crop(img image.Image, width, height int) (image.Rectangle, error)
}

// SmartcropEngine scores candidate regions with the smartcrop analyzer.
type SmartcropEngine struct {
	analyzer smartcrop.Analyzer
}

// NewSmartcropEngine returns an engine backed by smartcrop with its default
// nfnt resizer.
func NewSmartcropEngine() *SmartcropEngine {
	return &SmartcropEngine{analyzer: smartcrop.NewAnalyzer(nfnt.NewDefaultResizer())}
}

// Crop implements Engine.
func (e *SmartcropEngine) Crop(img image.Image, width, height int) (image.Rectangle, error) {
	return e.analyzer.FindBestCrop(img, width, height)
}

// Suggester wraps an Engine with the downsample/rescale glue.
type Suggester struct {
	engine      Engine
	analysisCap int
}

// New returns a Suggester with the default analysis cap.
func New(engine Engine) *Suggester {
	return NewWithCap(engine, DefaultAnalysisCap)
}

// NewWithCap returns a Suggester that downsamples sources whose long side
// exceeds cap before handing them to the engine.
func NewWithCap(engine Engine, cap int) *Suggester {
	return &Suggester{engine: engine, analysisCap: cap}
}

// Suggest returns a source-space crop box of approximately targetWidth x
// targetHeight covering the most salient region of img. When the source is
// larger than the analysis cap it is downsampled preserving aspect ratio, the
// engine is asked for a proportionally smaller box, and the result is scaled
// back up with rounding to whole pixels and clamped into the source bounds.
func (s *Suggester) Suggest(img image.Image, targetWidth, targetHeight int) (geometry.Rect, error) {
	if targetWidth <= 0 || targetHeight <= 0 {
		return geometry.Rect{}, fmt.Errorf("invalid target size %dx%d", targetWidth, targetHeight)
	}

	bounds := img.Bounds()
	sourceWidth, sourceHeight := bounds.Dx(), bounds.Dy()

	analyzed := img
	scale := 1.0
	if sourceWidth > s.analysisCap || sourceHeight > s.analysisCap {
		analyzed = imaging.Fit(img, s.analysisCap, s.analysisCap, imaging.Lanczos)
		scale = float64(sourceWidth) / float64(analyzed.Bounds().Dx())
	}

	askWidth := round(float64(targetWidth) / scale)
	askHeight := round(float64(targetHeight) / scale)

	crop, err := s.engine.Crop(analyzed, askWidth, askHeight)
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("saliency engine: %w", err)
	}
	if crop.Empty() {
		return geometry.Rect{}, fmt.Errorf("saliency engine returned an empty crop")
	}

	suggested := geometry.Rect{
		X:      round(float64(crop.Min.X) * scale),
		Y:      round(float64(crop.Min.Y) * scale),
		Width:  round(float64(crop.Dx()) * scale),
		Height: round(float64(crop.Dy()) * scale),
	}

	// Rounding can push the rescaled box a pixel past an edge.
	if suggested.Width > sourceWidth {
		suggested.Width = sourceWidth
	}
	if suggested.Height > sourceHeight {
		suggested.Height = sourceHeight
	}
	source := geometry.Rect{Width: sourceWidth, Height: sourceHeight}
	return geometry.Translate(suggested, 0, 0, source), nil
}

func round(v float64) int {
	return int(math.Round(v))
}
