package geometry

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat is returned for size identifiers that are not "WxH".
	ErrInvalidFormat = errors.New("invalid size identifier format")
	// ErrDegenerateRatio is returned when the height component is zero.
	ErrDegenerateRatio = errors.New("size identifier has zero height")
)

var sizePattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

// Size is a parsed print size identifier such as "9x6". The numbers carry no
// unit; callers interpret them consistently (typically inches). Only the
// derived aspect ratio and the identifier string itself matter to cropping.
type Size struct {
	Width  int
	Height int
}

// Ratio returns width divided by height.
func (s Size) Ratio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// String formats the size back into its canonical identifier.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses a size identifier of the form "WxH" (case-insensitive
// separator, both positive integers). It returns ErrInvalidFormat for
// malformed identifiers and ErrDegenerateRatio when the height is zero.
// Errors are never silently defaulted; tagging fails loudly at the call site.
func ParseSize(id string) (Size, error) {
	m := sizePattern.FindStringSubmatch(strings.ToLower(id))
	if m == nil {
		return Size{}, fmt.Errorf("%w: %q (expected \"WxH\", e.g. \"9x6\")", ErrInvalidFormat, id)
	}
	width, err := strconv.Atoi(m[1])
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidFormat, id)
	}
	height, err := strconv.Atoi(m[2])
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidFormat, id)
	}
	if height == 0 {
		return Size{}, fmt.Errorf("%w: %q", ErrDegenerateRatio, id)
	}
	return Size{Width: width, Height: height}, nil
}

// ValidateSize reports whether id is a well-formed, non-degenerate size
// identifier. Intended for input validation paths that must not fail.
func ValidateSize(id string) bool {
	_, err := ParseSize(id)
	return err == nil
}
