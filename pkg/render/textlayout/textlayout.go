// Package textlayout provides measurement-driven text helpers used by the
// layout generators.
//
// All functions take a measure function (see draw.MeasureFunc) instead of a
// font so they can be tested with fixed-advance stubs.
package textlayout

import (
	"math"
	"strings"

	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// TruncateToWidth returns text unchanged when it fits in maxWidth. Otherwise
// it removes trailing runes one at a time until candidate+Ellipsis fits;
// whitespace is kept, so "hello …" is a possible result. When not even the
// ellipsis fits the result is the ellipsis alone.
func TruncateToWidth(measure func(string) float64, text string, maxWidth float64) string {
	if measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + Ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return Ellipsis
}

// WrapToLines fills lines greedily: each word is appended to the current line
// while the space-joined line still fits in maxWidth, otherwise the line is
// flushed and the word starts a new one. A word wider than maxWidth occupies
// its own line unmodified.
func WrapToLines(measure func(string) float64, words []string, maxWidth float64) []string {
	var lines []string
	line := ""
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		candidate := line + " " + w
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Words splits s on runs of whitespace.
func Words(s string) []string {
	return strings.Fields(s)
}

// RoundedRectPath returns a closed rectangle whose corners are circular arcs
// of radius r. Callers must keep r ≤ min(w, h)/2.
func RoundedRectPath(x, y, w, h, r float64) draw.Path {
	x0, x1, x2, x3 := x, x+r, x+w-r, x+w
	y0, y1, y2, y3 := y, y+r, y+h-r, y+h

	var p draw.Path
	p.MoveTo(x1, y0)
	p.LineTo(x2, y0)
	p.Arc(x2, y1, r, 1.5*math.Pi, 2*math.Pi)
	p.LineTo(x3, y2)
	p.Arc(x2, y2, r, 0, 0.5*math.Pi)
	p.LineTo(x1, y3)
	p.Arc(x1, y2, r, 0.5*math.Pi, math.Pi)
	p.LineTo(x0, y1)
	p.Arc(x1, y1, r, math.Pi, 1.5*math.Pi)
	p.Close()
	return p
}
