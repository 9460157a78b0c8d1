package surface

import (
	"github.com/matzehuels/inkwell/pkg/errors"
	"github.com/matzehuels/inkwell/pkg/fonts"
	"github.com/matzehuels/inkwell/pkg/hexcolor"
	"github.com/matzehuels/inkwell/pkg/render"
)

// Params is the full set of inputs for a signature.
type Params struct {
	Text        string
	Style       render.Style
	Font        string // font ID, name or CSS family; empty selects the style's default
	Color       string // #RRGGBB
	StrokeWidth float64
	Animate     bool // a false→true flip starts the animation
}

// DefaultParams returns the parameters a new surface starts with.
func DefaultParams() Params {
	return Params{
		Text:        "Your Signature",
		Style:       render.Calligraphy,
		Color:       hexcolor.DefaultColor,
		StrokeWidth: 2,
	}
}

// Validate checks every field.
func (p Params) Validate() error {
	if err := errors.ValidateText(p.Text); err != nil {
		return err
	}
	if !p.Style.Valid() {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style %d", uint8(p.Style))
	}
	if err := hexcolor.Validate(p.Color); err != nil {
		return err
	}
	if err := errors.ValidateStrokeWidth(p.StrokeWidth); err != nil {
		return err
	}
	_, err := p.FontEntry()
	return err
}

// FontEntry resolves Font against the font table.
func (p Params) FontEntry() (fonts.Font, error) {
	if p.Font == "" {
		f, ok := fonts.Default(p.Style.String())
		if !ok {
			return fonts.Font{}, errors.New(errors.ErrCodeInvalidFont, "style %s has no fonts", p.Style)
		}
		return f, nil
	}
	f, ok := fonts.Lookup(p.Font)
	if !ok {
		return fonts.Font{}, errors.New(errors.ErrCodeInvalidFont, "unknown font %q", p.Font)
	}
	return f, nil
}

// drawsLike reports whether p and q produce the same drawing.
func (p Params) drawsLike(q Params) bool {
	p.Animate, q.Animate = false, false
	return p == q
}
