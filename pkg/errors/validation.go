package errors

import (
	"math"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength bounds signature text. Longer input only shrinks the
// computed font size further and is almost certainly a paste accident.
const MaxTextLength = 256

// Stroke width bounds accepted by the renderer.
const (
	MinStrokeWidth = 1.0
	MaxStrokeWidth = 10.0
)

// hexColorRegex matches a "#RRGGBB" color with exactly six hex digits.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHexColor validates a "#RRGGBB" color string.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid color %q (want #RRGGBB)", s)
	}
	return nil
}

// ValidateText validates signature text.
//
// The validation rules:
//   - No empty text
//   - Valid UTF-8
//   - No control characters
//   - Maximum length of MaxTextLength runes
func ValidateText(text string) error {
	if text == "" {
		return New(ErrCodeInvalidText, "text cannot be empty")
	}
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidText, "text is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return New(ErrCodeInvalidText, "text too long (%d runes, max %d)", n, MaxTextLength)
	}
	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidText, "text contains control characters")
		}
	}
	return nil
}

// ValidateStrokeWidth checks that w lies in [MinStrokeWidth, MaxStrokeWidth].
func ValidateStrokeWidth(w float64) error {
	if math.IsNaN(w) || w < MinStrokeWidth || w > MaxStrokeWidth {
		return New(ErrCodeInvalidStroke, "stroke width %v out of range [%v, %v]", w, MinStrokeWidth, MaxStrokeWidth)
	}
	return nil
}

// ValidateSize checks surface dimensions in pixels.
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidSize, "surface size must be positive, got %dx%d", width, height)
	}
	return nil
}
