package draw

import "image/color"

// Weight is a font weight.
type Weight int

const (
	Regular Weight = iota
	Medium
	Bold
)

// String returns the weight name.
func (w Weight) String() string {
	switch w {
	case Medium:
		return "medium"
	case Bold:
		return "bold"
	default:
		return "regular"
	}
}

// Font selects a face by size (pixels) and weight.
type Font struct {
	Size   float64
	Weight Weight
}

// Measurer reports the advance width of s when drawn in f.
type Measurer interface {
	Measure(f Font, s string) float64
}

// MeasureFunc binds a Measurer to one font.
func MeasureFunc(m Measurer, f Font) func(string) float64 {
	return func(s string) float64 { return m.Measure(f, s) }
}

// Stop is a gradient color stop at Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  color.RGBA
}

// LinearGradient blends Stops along the line (X0, Y0)→(X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// Paint is either a solid color or, when Gradient is set, a gradient.
type Paint struct {
	Color    color.RGBA
	Gradient *LinearGradient
}

// Solid returns a solid paint.
func Solid(c color.RGBA) Paint { return Paint{Color: c} }

// Gradient returns a two-stop linear gradient paint.
func Gradient(x0, y0, x1, y1 float64, from, to color.RGBA) Paint {
	return Paint{Gradient: &LinearGradient{
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		Stops: []Stop{{Offset: 0, Color: from}, {Offset: 1, Color: to}},
	}}
}

// Command is one drawing instruction.
type Command interface {
	command()
}

// Fill fills Path with Paint.
type Fill struct {
	Path  Path
	Paint Paint
}

// Stroke outlines Path.
type Stroke struct {
	Path  Path
	Color color.RGBA
	Width float64
}

// Text draws a single line with its baseline at (X, Y).
type Text struct {
	Text  string
	X, Y  float64
	Font  Font
	Color color.RGBA
}

// Avatar composites the image at URL into the circle centered at (CX, CY)
// with diameter Size once it has loaded.
type Avatar struct {
	URL    string
	Login  string
	CX, CY float64
	Size   float64
}

func (Fill) command()   {}
func (Stroke) command() {}
func (Text) command()   {}
func (Avatar) command() {}
