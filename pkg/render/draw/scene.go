package draw

import "image/color"

// Scene is an ordered list of commands for a canvas of Width × Height.
type Scene struct {
	Width, Height int
	Commands      []Command
}

// NewScene creates an empty scene.
func NewScene(width, height int) *Scene {
	return &Scene{Width: width, Height: height}
}

// Fill appends a fill command.
func (s *Scene) Fill(p Path, paint Paint) {
	s.Commands = append(s.Commands, Fill{Path: p, Paint: paint})
}

// Stroke appends a stroke command.
func (s *Scene) Stroke(p Path, c color.RGBA, width float64) {
	s.Commands = append(s.Commands, Stroke{Path: p, Color: c, Width: width})
}

// Text appends a text command.
func (s *Scene) Text(text string, x, y float64, f Font, c color.RGBA) {
	s.Commands = append(s.Commands, Text{Text: text, X: x, Y: y, Font: f, Color: c})
}

// Avatar appends an avatar composite command.
func (s *Scene) Avatar(url, login string, cx, cy, size float64) {
	s.Commands = append(s.Commands, Avatar{URL: url, Login: login, CX: cx, CY: cy, Size: size})
}

// Texts returns the text commands in paint order.
func (s *Scene) Texts() []Text {
	var out []Text
	for _, c := range s.Commands {
		if t, ok := c.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}

// Avatars returns the avatar commands in paint order.
func (s *Scene) Avatars() []Avatar {
	var out []Avatar
	for _, c := range s.Commands {
		if a, ok := c.(Avatar); ok {
			out = append(out, a)
		}
	}
	return out
}

// HasText reports whether any text command draws exactly text.
func (s *Scene) HasText(text string) bool {
	for _, t := range s.Texts() {
		if t.Text == text {
			return true
		}
	}
	return false
}
