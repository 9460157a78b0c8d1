package hexcolor

// Palette is a named group of swatches offered to users.
type Palette struct {
	Name   string
	Colors []string
}

// DefaultColor is the color new signatures start with.
const DefaultColor = "#0ea5e9"

// Palettes lists the built-in swatch groups, darkest last.
var Palettes = []Palette{
	{Name: "Ocean Blue", Colors: []string{"#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e"}},
	{Name: "Elegant Black", Colors: []string{"#000000", "#171717", "#262626", "#404040", "#525252"}},
	{Name: "Royal Purple", Colors: []string{"#7e22ce", "#6b21a8", "#581c87", "#4c1d95", "#4a1d96"}},
	{Name: "Forest Green", Colors: []string{"#16a34a", "#15803d", "#166534", "#14532d", "#052e16"}},
	{Name: "Sunset Red", Colors: []string{"#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#701a1a"}},
}
