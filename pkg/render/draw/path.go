package draw

import "math"

// SegmentKind identifies a path segment type.
type SegmentKind int

const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegArc
	SegClose
)

// Segment is one path element. Arc segments describe a circular arc centered
// at (X, Y) with radius R from angle A0 to A1 (radians, clockwise in screen
// space); an arc connects to the current point with a straight line.
type Segment struct {
	Kind   SegmentKind
	X, Y   float64
	R      float64
	A0, A1 float64
}

// Path is an ordered list of segments.
type Path []Segment

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) { *p = append(*p, Segment{Kind: SegMoveTo, X: x, Y: y}) }

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) { *p = append(*p, Segment{Kind: SegLineTo, X: x, Y: y}) }

// Arc adds a circular arc.
func (p *Path) Arc(cx, cy, r, a0, a1 float64) {
	*p = append(*p, Segment{Kind: SegArc, X: cx, Y: cy, R: r, A0: a0, A1: a1})
}

// Close closes the current sub-path.
func (p *Path) Close() { *p = append(*p, Segment{Kind: SegClose}) }

// Circle returns a closed circular path.
func Circle(cx, cy, r float64) Path {
	var p Path
	p.Arc(cx, cy, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// Rect returns a closed axis-aligned rectangle.
func Rect(x, y, w, h float64) Path {
	var p Path
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// Polyline returns an open path through pts, given as x0, y0, x1, y1, ...
func Polyline(pts ...float64) Path {
	var p Path
	for i := 0; i+1 < len(pts); i += 2 {
		if i == 0 {
			p.MoveTo(pts[i], pts[i+1])
		} else {
			p.LineTo(pts[i], pts[i+1])
		}
	}
	return p
}
