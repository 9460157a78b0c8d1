package render

import (
	"strings"

	"github.com/matzehuels/inkwell/pkg/errors"
)

// Style selects a signature rendering recipe.
type Style uint8

// Supported styles.
const (
	Calligraphy Style = iota + 1
	Handwriting
	Modern
	Elegant
)

// StyleInfo describes a style for display.
type StyleInfo struct {
	Style       Style
	Name        string
	Description string
}

// Styles lists every style in display order.
var Styles = []StyleInfo{
	{Calligraphy, "Calligraphy", "Elegant and formal"},
	{Handwriting, "Handwriting", "Natural and flowing"},
	{Modern, "Modern", "Clean and professional"},
	{Elegant, "Elegant", "Refined and decorative"},
}

var styleNames = [...]string{
	Calligraphy: "calligraphy",
	Handwriting: "handwriting",
	Modern:      "modern",
	Elegant:     "elegant",
}

// String returns the lowercase style identifier.
func (s Style) String() string {
	if !s.Valid() {
		return "plain"
	}
	return styleNames[s]
}

// Valid reports whether s is one of the supported styles.
func (s Style) Valid() bool {
	return s >= Calligraphy && s <= Elegant
}

// Info returns the display entry for s.
func (s Style) Info() (StyleInfo, bool) {
	for _, info := range Styles {
		if info.Style == s {
			return info, true
		}
	}
	return StyleInfo{}, false
}

// ParseStyle resolves a style identifier, ignoring case.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s := Calligraphy; s <= Elegant; s++ {
		if styleNames[s] == name {
			return s, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
