// Package batch executes the final crop-and-resize pass over a set of tagged
// images. Items are processed strictly sequentially so peak memory stays
// bounded by one decoded image; cancellation is cooperative and takes effect
// between items, never mid-item. A failing item is recorded and skipped so
// one bad file never discards the rest of the batch.
package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/davidhanko/printcrop/internal/utils"
	"github.com/davidhanko/printcrop/pkg/geometry"
	"github.com/davidhanko/printcrop/pkg/processing"
	"github.com/davidhanko/printcrop/pkg/suggest"
)

// Item is one image to crop. A nil CropBox means no manual box was drawn:
// the runner asks the suggester, and falls back to a centered maximal-fit
// box when no suggester is configured or the suggestion fails.
type Item struct {
	Path       string
	CropBox    *geometry.Rect
	SizeTag    string
	OutputPath string
}

// ItemError pairs a failed item's path with the reason.
type ItemError struct {
	Path string
	Err  error
}

// Result summarizes a batch run. Cancelled is not an error: the counts of
// work done before the cancellation point are intact.
type Result struct {
	Succeeded int
	Failed    []ItemError
	Cancelled bool
}

// Progress reports the state after each processed item. Err is nil when the
// item succeeded.
type Progress struct {
	Index int // 1-based position in the batch
	Total int
	Path  string
	Err   error
}

// ProgressFunc receives a Progress update after every item, success or not.
type ProgressFunc func(Progress)

// Runner executes batches. Construct with NewRunner; the suggester may be
// nil, in which case unboxed items use a centered crop.
type Runner struct {
	processor *processing.Processor
	suggester *suggest.Suggester
	format    string
	quality   int
}

// NewRunner returns a Runner writing outputs in the given format and quality.
func NewRunner(processor *processing.Processor, suggester *suggest.Suggester, format string, quality int) *Runner {
	return &Runner{
		processor: processor,
		suggester: suggester,
		format:    format,
		quality:   quality,
	}
}

// Run processes items in order. Before each item the context is checked:
// once it is done the batch stops immediately, returning the partial result
// with Cancelled set. Long-running callers should invoke Run from a
// dedicated worker goroutine so interactive work is never blocked.
func (r *Runner) Run(ctx context.Context, items []Item, onProgress ProgressFunc) Result {
	var result Result
	for i, item := range items {
		if ctx.Err() != nil {
			result.Cancelled = true
			return result
		}

		err := r.runOne(item)
		if err != nil {
			result.Failed = append(result.Failed, ItemError{Path: item.Path, Err: err})
		} else {
			result.Succeeded++
		}

		if onProgress != nil {
			onProgress(Progress{Index: i + 1, Total: len(items), Path: item.Path, Err: err})
		}
	}
	return result
}

func (r *Runner) runOne(item Item) error {
	size, err := geometry.ParseSize(item.SizeTag)
	if err != nil {
		return err
	}

	img, err := r.processor.Load(item.Path)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	// The output is always the maximal fit for this image and ratio. A
	// manual box contributes position and ratio, not final resolution.
	targetWidth, targetHeight := geometry.LargestFit(size.Ratio(), bounds.Dx(), bounds.Dy())

	crop := geometry.CenteredCrop(size.Ratio(), bounds.Dx(), bounds.Dy())
	if item.CropBox != nil {
		crop = *item.CropBox
	} else if r.suggester != nil {
		if suggested, err := r.suggester.Suggest(img, targetWidth, targetHeight); err == nil {
			crop = suggested
		}
		// A failed suggestion keeps the centered fallback.
	}

	out, err := r.processor.CropResize(img, crop, targetWidth, targetHeight)
	if err != nil {
		return fmt.Errorf("crop: %w", err)
	}

	if err := utils.EnsureDir(filepath.Dir(item.OutputPath)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := r.processor.Save(out, item.OutputPath, r.format, r.quality, false); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
