package geometry

// LargestFit returns the dimensions of the largest rectangle with the given
// aspect ratio (width/height) that fits entirely inside an image of the given
// size. One dimension always touches an image edge.
//
// Two candidates are considered: fit by width (full image width, derived
// height) and fit by height (full image height, derived width). Fit by width
// wins whenever its derived height does not exceed the image height; when the
// ratio matches the image exactly both candidates are equal.
func LargestFit(ratio float64, imageWidth, imageHeight int) (int, int) {
	if ratio <= 0 || imageWidth <= 0 || imageHeight <= 0 {
		return 0, 0
	}

	heightByWidth := int(float64(imageWidth) / ratio)
	if heightByWidth <= imageHeight {
		return imageWidth, heightByWidth
	}
	return int(float64(imageHeight) * ratio), imageHeight
}

// CenteredCrop returns the maximal-fit rectangle for the ratio, centered
// within the image. Used as the default crop box when no manual box exists
// and as the fallback when the saliency engine fails.
func CenteredCrop(ratio float64, imageWidth, imageHeight int) Rect {
	width, height := LargestFit(ratio, imageWidth, imageHeight)
	return Rect{
		X:      (imageWidth - width) / 2,
		Y:      (imageHeight - height) / 2,
		Width:  width,
		Height: height,
	}
}
