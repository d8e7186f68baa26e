package layout

import (
	"image/color"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
)

// ModernTopics is the topic cap of the modern style.
const ModernTopics = 5

// gridCell is the spacing of the modern background grid.
const gridCell = 50

// Modern renders a gradient card over a fine grid texture with four evenly
// spaced stat columns, a topics strip, and contributor avatars.
func Modern(rec card.RepositoryRecord, opts card.RenderOptions, m draw.Measurer) (*draw.Scene, error) {
	c, err := newCanvas(rec, opts, m)
	if err != nil {
		return nil, err
	}
	p, f := c.pal, c.fields

	c.background(draw.Gradient(0, 0, c.w, c.h, p.Mantle, p.Base), 24)

	var grid draw.Path
	for x := 0.0; x < c.w; x += gridCell {
		for y := 0.0; y < c.h; y += gridCell {
			grid = append(grid, draw.Rect(x, y, gridCell, gridCell)...)
		}
	}
	c.Stroke(grid, p.Surface0, 0.5)

	title := bold(56)
	c.Text(c.truncate(title, f.Owner+"/"+f.Name, c.w-80), 50, 100, title, p.Text)

	desc := regular(32)
	c.Text(c.truncate(desc, f.Description, c.w-100), 50, 160, desc, p.Subtext1)

	stats := []struct {
		glyph string
		value string
		color color.RGBA
	}{
		{glyphStar, f.Stars, p.Yellow},
		{glyphFork, f.Forks, p.Green},
		{glyphIssue, f.Issues, p.Red},
		{glyphLanguage, f.Language, p.Blue},
	}
	y := c.h - 120
	colWidth := (c.w - 100) / float64(len(stats))
	for i, st := range stats {
		x := 50 + float64(i)*colWidth
		c.Text(st.glyph, x, y, bold(48), st.color)
		c.Text(c.truncate(bold(32), st.value, colWidth-60), x+50, y, bold(32), p.Text)
	}

	c.topics(50, c.h-50, pillStrip{
		cap:     ModernTopics,
		font:    regular(20),
		padding: 12,
		height:  36,
		rise:    24,
		gap:     12,
	})

	const size = 48
	c.avatars(avatarRow{size: size, step: size + 10, rightCX: c.w - 74, cy: c.h - 56})

	return c.Scene, nil
}
