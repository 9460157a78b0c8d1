package geom

import (
	"math"
	"unicode/utf8"
)

const (
	// BaseFontSize is the font size for short text on a reference-width surface.
	BaseFontSize = 72
	// ReferenceWidth is the surface width at which BaseFontSize applies unscaled.
	ReferenceWidth = 500
	// ShrinkThreshold is the text length beyond which the font shrinks.
	ShrinkThreshold = 10
)

// FontSize returns the pixel font size for text on a surface of the given
// width. Empty text is sized as a single rune.
func FontSize(text string, width float64) int {
	n := utf8.RuneCountInString(text)
	if n < 1 {
		n = 1
	}
	factor := math.Min(1, float64(ShrinkThreshold)/float64(n))
	return int(math.Floor(BaseFontSize * factor * (width / ReferenceWidth)))
}
