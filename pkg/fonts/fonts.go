// Package fonts provides the style→font table and turns table entries into
// parsed TrueType fonts.
//
// Each signature style offers five script or display families. The
// families are referenced by ID ("great-vibes") or by their CSS value
// ("'Great Vibes', cursive"); the CSS value is what the vector export
// writes into its text element.
//
// Rasterizing needs real glyphs. A [Resolver] first looks for an installed
// copy of the family (via go-findfont) when system lookup is enabled, and
// otherwise falls back to a Go font embedded in the binary that matches the
// style's character: italic for calligraphy, medium italic for handwriting,
// regular for modern and small caps italic for elegant. The embedded
// fallbacks keep output reproducible across machines.
package fonts

import (
	"strings"

	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Style names as used by the table. They match render.Style.String().
const (
	StyleCalligraphy = "calligraphy"
	StyleHandwriting = "handwriting"
	StyleModern      = "modern"
	StyleElegant     = "elegant"
)

// Font is one entry of the style→font table.
type Font struct {
	ID     string // Stable identifier, e.g. "great-vibes"
	Name   string // Display name
	Family string // CSS font-family value
	File   string // File name searched for when system lookup is enabled
	Style  string // Style the font belongs to

	fallback []byte // Embedded TTF used when File is not installed
}

// Fallback returns the embedded TTF data used when the family is not
// installed.
func (f Font) Fallback() []byte {
	return f.fallback
}

func entry(style string, fallback []byte, id, name, family, file string) Font {
	return Font{ID: id, Name: name, Family: family, File: file, Style: style, fallback: fallback}
}

// Table maps each style to its fonts; the first entry is the default.
var Table = map[string][]Font{
	StyleCalligraphy: {
		entry(StyleCalligraphy, goitalic.TTF, "tangerine", "Tangerine", "'Tangerine', cursive", "Tangerine-Regular.ttf"),
		entry(StyleCalligraphy, goitalic.TTF, "dancing-script", "Dancing Script", "'Dancing Script', cursive", "DancingScript-Regular.ttf"),
		entry(StyleCalligraphy, goitalic.TTF, "parisienne", "Parisienne", "'Parisienne', cursive", "Parisienne-Regular.ttf"),
		entry(StyleCalligraphy, goitalic.TTF, "alex-brush", "Alex Brush", "'Alex Brush', cursive", "AlexBrush-Regular.ttf"),
		entry(StyleCalligraphy, goitalic.TTF, "great-vibes", "Great Vibes", "'Great Vibes', cursive", "GreatVibes-Regular.ttf"),
	},
	StyleHandwriting: {
		entry(StyleHandwriting, gomediumitalic.TTF, "caveat", "Caveat", "'Caveat', cursive", "Caveat-Regular.ttf"),
		entry(StyleHandwriting, gomediumitalic.TTF, "indie-flower", "Indie Flower", "'Indie Flower', cursive", "IndieFlower-Regular.ttf"),
		entry(StyleHandwriting, gomediumitalic.TTF, "sacramento", "Sacramento", "'Sacramento', cursive", "Sacramento-Regular.ttf"),
		entry(StyleHandwriting, gomediumitalic.TTF, "shadows-into-light", "Shadows Into Light", "'Shadows Into Light', cursive", "ShadowsIntoLight-Regular.ttf"),
		entry(StyleHandwriting, gomediumitalic.TTF, "patrick-hand", "Patrick Hand", "'Patrick Hand', cursive", "PatrickHand-Regular.ttf"),
	},
	StyleModern: {
		entry(StyleModern, goregular.TTF, "montserrat", "Montserrat", "'Montserrat', sans-serif", "Montserrat-Regular.ttf"),
		entry(StyleModern, goregular.TTF, "raleway", "Raleway", "'Raleway', sans-serif", "Raleway-Regular.ttf"),
		entry(StyleModern, goregular.TTF, "playfair", "Playfair Display", "'Playfair Display', serif", "PlayfairDisplay-Regular.ttf"),
		entry(StyleModern, goregular.TTF, "poppins", "Poppins", "'Poppins', sans-serif", "Poppins-Regular.ttf"),
		entry(StyleModern, goregular.TTF, "cormorant", "Cormorant", "'Cormorant Garamond', serif", "CormorantGaramond-Regular.ttf"),
	},
	StyleElegant: {
		entry(StyleElegant, gosmallcapsitalic.TTF, "pinyon-script", "Pinyon Script", "'Pinyon Script', cursive", "PinyonScript-Regular.ttf"),
		entry(StyleElegant, gosmallcapsitalic.TTF, "petit-formal", "Petit Formal Script", "'Petit Formal Script', cursive", "PetitFormalScript-Regular.ttf"),
		entry(StyleElegant, gosmallcapsitalic.TTF, "cinzel", "Cinzel", "'Cinzel', serif", "Cinzel-Regular.ttf"),
		entry(StyleElegant, gosmallcapsitalic.TTF, "cormorant-upright", "Cormorant Upright", "'Cormorant Upright', serif", "CormorantUpright-Regular.ttf"),
		entry(StyleElegant, gosmallcapsitalic.TTF, "playfair-sc", "Playfair SC", "'Playfair Display SC', serif", "PlayfairDisplaySC-Regular.ttf"),
	},
}

// Styles lists the table's styles in display order.
var Styles = []string{StyleCalligraphy, StyleHandwriting, StyleModern, StyleElegant}

// ForStyle returns the fonts offered for style, or nil for unknown styles.
func ForStyle(style string) []Font {
	return Table[style]
}

// Default returns the first font of style.
func Default(style string) (Font, bool) {
	fs := Table[style]
	if len(fs) == 0 {
		return Font{}, false
	}
	return fs[0], true
}

// Lookup finds a font by ID, display name or CSS family value.
// Matching ignores case and surrounding whitespace.
func Lookup(ref string) (Font, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Font{}, false
	}
	for _, style := range Styles {
		for _, f := range Table[style] {
			if strings.EqualFold(f.ID, ref) || strings.EqualFold(f.Name, ref) || strings.EqualFold(f.Family, ref) {
				return f, true
			}
		}
	}
	return Font{}, false
}
