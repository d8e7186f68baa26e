// Package layout implements the card layout generators.
//
// A [Generator] maps a repository record and render options onto an ordered
// [draw.Scene]. Generators never draw; they resolve the palette, measure text
// through a [draw.Measurer], and append commands in paint order:
// background, chrome or texture, title, description, stats, topics, avatars.
//
// Styles form a closed set (see [card.Styles]); [For] resolves one with an
// exhaustive switch.
package layout

import (
	"image/color"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/palette"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/textlayout"
)

// Generator builds the scene for one card style. A palette lookup failure is
// returned before any command is produced.
type Generator func(rec card.RepositoryRecord, opts card.RenderOptions, m draw.Measurer) (*draw.Scene, error)

// For returns the generator for style.
func For(style card.StyleID) (Generator, error) {
	switch style {
	case card.StyleClassic:
		return Classic, nil
	case card.StyleCompact:
		return Compact, nil
	case card.StyleDetailed:
		return Detailed, nil
	case card.StyleDashboard:
		return Dashboard, nil
	case card.StyleMinimal:
		return Minimal, nil
	case card.StyleModern:
		return Modern, nil
	default:
		return nil, errors.New(errors.ErrCodeUnknownStyle, "no generator for style %q", style)
	}
}

// MaxAvatars caps the contributor avatars drawn by any style.
const MaxAvatars = 5

// Stat glyphs.
const (
	glyphStar     = "★"
	glyphFork     = "⑂"
	glyphIssue    = "◉"
	glyphLanguage = "⬤"
)

func bold(size float64) draw.Font    { return draw.Font{Size: size, Weight: draw.Bold} }
func medium(size float64) draw.Font  { return draw.Font{Size: size, Weight: draw.Medium} }
func regular(size float64) draw.Font { return draw.Font{Size: size} }

// canvas bundles the state every generator needs.
type canvas struct {
	*draw.Scene
	pal    palette.Palette
	fields card.Fields
	w, h   float64
	m      draw.Measurer
}

func newCanvas(rec card.RepositoryRecord, opts card.RenderOptions, m draw.Measurer) (*canvas, error) {
	opts = opts.Normalized()
	pal, err := palette.Lookup(opts.Theme)
	if err != nil {
		return nil, err
	}
	return &canvas{
		Scene:  draw.NewScene(opts.Width, opts.Height),
		pal:    pal,
		fields: card.Resolve(rec),
		w:      float64(opts.Width),
		h:      float64(opts.Height),
		m:      m,
	}, nil
}

func (c *canvas) measure(f draw.Font, s string) float64 {
	return c.m.Measure(f, s)
}

func (c *canvas) truncate(f draw.Font, s string, maxWidth float64) string {
	return textlayout.TruncateToWidth(draw.MeasureFunc(c.m, f), s, maxWidth)
}

// background fills the whole canvas with a rounded rectangle.
func (c *canvas) background(p draw.Paint, radius float64) {
	c.Fill(textlayout.RoundedRectPath(0, 0, c.w, c.h, radius), p)
}

// rightAligned draws s so that it ends margin pixels from the right edge.
func (c *canvas) rightAligned(s string, margin, y float64, f draw.Font, col color.RGBA) {
	c.Text(s, c.w-c.measure(f, s)-margin, y, f, col)
}

// pillStrip describes a topics strip.
type pillStrip struct {
	cap     int
	font    draw.Font
	padding float64
	height  float64
	rise    float64 // distance from baseline to pill top
	gap     float64
}

// topics draws up to st.cap topic pills left to right starting at x with
// their text baseline at y. It stops at the cap regardless of space.
func (c *canvas) topics(x, y float64, st pillStrip) {
	for _, topic := range capped(c.fields.Topics, st.cap) {
		w := c.measure(st.font, topic) + 2*st.padding
		if w < st.height {
			w = st.height
		}
		c.Fill(textlayout.RoundedRectPath(x, y-st.rise, w, st.height, st.height/2), draw.Solid(c.pal.Surface0))
		c.Text(topic, x+st.padding, y, st.font, c.pal.Text)
		x += w + st.gap
	}
}

// avatarRow lays out contributor avatars right to left. The first avatar is
// centered at (rightCX, cy); each next one step pixels further left.
type avatarRow struct {
	size    float64
	step    float64
	rightCX float64
	cy      float64
}

func (c *canvas) avatars(row avatarRow) {
	for i, ctr := range capped(c.fields.Contributors, MaxAvatars) {
		if ctr.AvatarURL == "" {
			continue
		}
		c.Avatar(ctr.AvatarURL, ctr.Login, row.rightCX-float64(i)*row.step, row.cy, row.size)
	}
}

func capped[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
