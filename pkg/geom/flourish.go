package geom

import "math"

// Point is a 2D position in surface pixels.
type Point struct {
	X, Y float64
}

// Path is an ordered polyline.
type Path []Point

// Flourishes are the decorative paths drawn around elegant signatures.
type Flourishes struct {
	Underline   Path
	EndSpiral   Path
	StartSpiral Path
}

// Paths returns the flourishes in reveal order.
func (f Flourishes) Paths() []Path {
	return []Path{f.Underline, f.EndSpiral, f.StartSpiral}
}

// Empty reports whether no path holds any point.
func (f Flourishes) Empty() bool {
	return len(f.Underline) == 0 && len(f.EndSpiral) == 0 && len(f.StartSpiral) == 0
}

// Flourish sampling parameters.
const (
	FlourishMargin     = 20.0 // horizontal overhang past the text on each side
	FlourishGap        = 10.0 // distance below the text box
	UnderlineStep      = 5.0  // x step between underline samples
	UnderlineAmplitude = 5.0  // depth of the underline bow
	SpiralPoints       = 20
	SpiralAngleStep    = 0.2
	SpiralBaseRadius   = 10.0
	SpiralRadiusStep   = 1.5
)

// UnderlineY is the y position of underlines and flourish anchors for text
// centered vertically on a surface of the given height.
func UnderlineY(height float64, fontSize int) float64 {
	return height/2 + float64(fontSize)/2 + FlourishGap
}

// GenerateFlourishes samples the three flourish paths for text of the given
// measured width centered on a width×height surface.
func GenerateFlourishes(textWidth, width, height float64, fontSize int) Flourishes {
	cx := width / 2
	startX := cx - textWidth/2 - FlourishMargin
	endX := cx + textWidth/2 + FlourishMargin
	lineY := UnderlineY(height, fontSize)

	var underline Path
	span := endX - startX
	for x := startX; x <= endX; x += UnderlineStep {
		t := (x - startX) / span
		underline = append(underline, Point{X: x, Y: lineY + math.Sin(t*math.Pi)*UnderlineAmplitude})
	}

	end := make(Path, 0, SpiralPoints)
	start := make(Path, 0, SpiralPoints)
	for i := 0; i < SpiralPoints; i++ {
		r := SpiralBaseRadius + float64(i)*SpiralRadiusStep
		a := float64(i) * SpiralAngleStep
		end = append(end, Point{X: endX + math.Cos(a)*r, Y: lineY + math.Sin(a)*r})
		b := math.Pi - float64(i)*SpiralAngleStep
		start = append(start, Point{X: startX + math.Cos(b)*r, Y: lineY + math.Sin(b)*r})
	}

	return Flourishes{Underline: underline, EndSpiral: end, StartSpiral: start}
}
