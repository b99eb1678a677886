// Package printcrop provides aspect-locked crop geometry for preparing photos
// for printing.
//
// A photo tagged with a print size ("9x6", "13x18") gets a crop box locked to
// that size's aspect ratio. The box can be suggested automatically, adjusted
// interactively on a scaled preview, and finally executed as an exact-dimension
// crop at the source image's maximal resolution for the ratio.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		"github.com/davidhanko/printcrop"
//		"github.com/davidhanko/printcrop/pkg/batch"
//		"github.com/davidhanko/printcrop/pkg/processing"
//		"github.com/davidhanko/printcrop/pkg/suggest"
//	)
//
//	func main() {
//		processor := processing.New()
//		suggester := suggest.New(suggest.NewSmartcropEngine())
//
//		// Interactive adjustment on a preview.
//		img, err := processor.Load("photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//		session, err := printcrop.NewSession("9x6", img.Bounds().Dx(), img.Bounds().Dy())
//		if err != nil {
//			log.Fatal(err)
//		}
//		session.SetPreview(1200, 800, 1280, 820)
//		session.EnsureBox(img, suggester)
//		session.Drag(25, -10)
//
//		// Batch execution.
//		runner := batch.NewRunner(processor, suggester, "jpg", 95)
//		box := session.Box()
//		result := runner.Run(context.Background(), []batch.Item{{
//			Path:       "photo.jpg",
//			CropBox:    &box,
//			SizeTag:    "9x6",
//			OutputPath: "out/photo.jpg",
//		}}, nil)
//		log.Printf("cropped %d image(s)", result.Succeeded)
//	}
//
// The package consists of five main components:
//
// 1. Geometry (pkg/geometry): ratio parsing, maximal-fit math, coordinate
// mapping between source and preview space, and the drag/resize solver
// 2. Suggest (pkg/suggest): automatic crop box suggestions via a saliency
// engine
// 3. Processing (pkg/processing): image decode, crop, resize, and encode
// 4. Batch (pkg/batch): sequential crop execution with progress and
// cancellation
// 5. Project (pkg/project): the tagged-image collection persisted between
// sittings
//
// Session, defined here, ties the geometry pieces together for one image: it
// owns the crop box in source coordinates and translates preview-space
// gestures into constrained source-space updates.
package printcrop

import (
	"fmt"
	"image"

	"github.com/davidhanko/printcrop/pkg/geometry"
	"github.com/davidhanko/printcrop/pkg/suggest"
)

// Version of the printcrop library
const Version = "1.0.0"

// DefaultMinCropSize is the smallest crop box edge, in preview pixels, that
// interactive resize gestures will produce.
const DefaultMinCropSize = 50

// Session holds the crop state for a single image tagged with a print size.
// The crop box lives in source coordinates; gestures arrive in preview
// coordinates and are mapped, constrained, and mapped back. A Session is not
// safe for concurrent use.
type Session struct {
	size         geometry.Size
	sourceWidth  int
	sourceHeight int
	mapper       *geometry.PreviewMapper
	box          *geometry.Rect

	// MinCropSize may be overridden before the first gesture.
	MinCropSize int
}

// NewSession starts a crop session for an image of the given dimensions tagged
// with sizeTag. The tag must parse as a print size.
func NewSession(sizeTag string, sourceWidth, sourceHeight int) (*Session, error) {
	size, err := geometry.ParseSize(sizeTag)
	if err != nil {
		return nil, err
	}
	if sourceWidth <= 0 || sourceHeight <= 0 {
		return nil, fmt.Errorf("invalid source dimensions %dx%d", sourceWidth, sourceHeight)
	}
	return &Session{
		size:         size,
		sourceWidth:  sourceWidth,
		sourceHeight: sourceHeight,
		MinCropSize:  DefaultMinCropSize,
	}, nil
}

// Ratio returns the locked aspect ratio (width / height).
func (s *Session) Ratio() float64 {
	return s.size.Ratio()
}

// TargetDimensions returns the output resolution a crop from this session
// will produce: the maximal fit of the ratio within the source image.
func (s *Session) TargetDimensions() (int, int) {
	return geometry.LargestFit(s.size.Ratio(), s.sourceWidth, s.sourceHeight)
}

// SetPreview installs the coordinate mapping for a preview bitmap of
// bitmapWidth x bitmapHeight centered in a displayWidth x displayHeight area.
// Call it again whenever the preview is re-rendered at a new size; the box
// itself is stored in source coordinates and survives unchanged.
func (s *Session) SetPreview(bitmapWidth, bitmapHeight, displayWidth, displayHeight int) {
	s.mapper = geometry.NewPreviewMapper(
		s.sourceWidth, s.sourceHeight,
		bitmapWidth, bitmapHeight,
		displayWidth, displayHeight,
	)
}

// Box returns the current crop box in source coordinates. The zero Rect means
// no box exists yet.
func (s *Session) Box() geometry.Rect {
	if s.box == nil {
		return geometry.Rect{}
	}
	return *s.box
}

// HasBox reports whether a crop box exists.
func (s *Session) HasBox() bool {
	return s.box != nil
}

// SetBox installs a source-space crop box, clamping it into the image.
func (s *Session) SetBox(box geometry.Rect) {
	clamped := geometry.Translate(box, 0, 0, s.sourceRect())
	s.box = &clamped
}

// ClearBox removes the crop box, typically after the size tag changed.
func (s *Session) ClearBox() {
	s.box = nil
}

// PreviewBox returns the crop box mapped into preview coordinates. SetPreview
// must have been called.
func (s *Session) PreviewBox() geometry.Rect {
	if s.box == nil || s.mapper == nil {
		return geometry.Rect{}
	}
	return s.mapper.ToPreview(*s.box)
}

// EnsureBox creates the crop box if none exists. With a non-nil suggester the
// saliency suggestion is tried first; on failure, or with a nil suggester, the
// box is the maximal fit centered in the image. The existing box is never
// replaced.
func (s *Session) EnsureBox(img image.Image, suggester *suggest.Suggester) geometry.Rect {
	if s.box != nil {
		return *s.box
	}

	box := geometry.CenteredCrop(s.size.Ratio(), s.sourceWidth, s.sourceHeight)
	if suggester != nil && img != nil {
		targetWidth, targetHeight := s.TargetDimensions()
		if suggested, err := suggester.Suggest(img, targetWidth, targetHeight); err == nil {
			box = suggested
		}
	}
	s.box = &box
	return box
}

// Drag moves the crop box by (dx, dy) preview pixels. The box slides along
// the preview edges rather than crossing them; its size never changes. Drag
// is a no-op until both a box and a preview mapping exist.
func (s *Session) Drag(dx, dy int) {
	if s.box == nil || s.mapper == nil {
		return
	}
	preview := s.mapper.ToPreview(*s.box)
	moved := geometry.Translate(preview, dx, dy, s.mapper.PreviewBounds())
	s.applyPreview(moved)
}

// DragCorner resizes the crop box by dragging one of its corners (dx, dy)
// preview pixels. The aspect ratio stays locked, the opposite corner stays
// fixed, and the result respects MinCropSize and the preview bounds.
func (s *Session) DragCorner(corner geometry.Corner, dx, dy int) {
	if s.box == nil || s.mapper == nil {
		return
	}
	preview := s.mapper.ToPreview(*s.box)
	resized := geometry.Resize(corner, preview, dx, dy, s.size.Ratio(), s.mapper.PreviewBounds(), s.MinCropSize)
	s.applyPreview(resized)
}

// applyPreview maps a preview-space box back to source coordinates and clamps
// it into the image, absorbing the mapper's rounding.
func (s *Session) applyPreview(preview geometry.Rect) {
	box := s.mapper.ToSource(preview)
	if box.Width > s.sourceWidth {
		box.Width = s.sourceWidth
	}
	if box.Height > s.sourceHeight {
		box.Height = s.sourceHeight
	}
	box = geometry.Translate(box, 0, 0, s.sourceRect())
	s.box = &box
}

func (s *Session) sourceRect() geometry.Rect {
	return geometry.Rect{Width: s.sourceWidth, Height: s.sourceHeight}
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
