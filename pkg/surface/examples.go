package surface

import "github.com/matzehuels/inkwell/pkg/render"

// Example is a ready-made signature from the gallery.
type Example struct {
	ID          int
	Text        string
	Style       render.Style
	Font        string
	Color       string
	StrokeWidth float64
}

// Examples is the signature gallery.
var Examples = []Example{
	{1, "John Snow", render.Calligraphy, "dancing-script", "#0ea5e9", 2},
	{2, "Sarah Johnson", render.Handwriting, "caveat", "#7e22ce", 1.5},
	{3, "Michael Williams", render.Modern, "montserrat", "#000000", 1},
	{5, "Robert Brown", render.Elegant, "pinyon-script", "#b91c1c", 1.5},
	{6, "Jennifer Wilson", render.Calligraphy, "parisienne", "#0c4a6e", 2.5},
	{7, "David Miller", render.Modern, "raleway", "#166534", 1.5},
}

// ExampleByID returns the gallery entry with the given ID.
func ExampleByID(id int) (Example, bool) {
	for _, e := range Examples {
		if e.ID == id {
			return e, true
		}
	}
	return Example{}, false
}

// Params returns the example as surface parameters.
func (e Example) Params() Params {
	return Params{
		Text:        e.Text,
		Style:       e.Style,
		Font:        e.Font,
		Color:       e.Color,
		StrokeWidth: e.StrokeWidth,
	}
}
