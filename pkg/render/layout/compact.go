package layout

import (
	"image/color"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
)

// Compact renders a single-row card: a truncated owner/name title, a
// one-line description, and a star/fork/issue strip along the bottom with
// the language on the right. It draws no avatars.
func Compact(rec card.RepositoryRecord, opts card.RenderOptions, m draw.Measurer) (*draw.Scene, error) {
	c, err := newCanvas(rec, opts, m)
	if err != nil {
		return nil, err
	}
	p, f := c.pal, c.fields

	c.background(draw.Solid(p.Base), 16)

	title := bold(40)
	c.Text(c.truncate(title, f.Owner+"/"+f.Name, c.w-60), 30, 60, title, p.Blue)

	desc := regular(24)
	c.Text(c.truncate(desc, f.Description, c.w-60), 30, 100, desc, p.Text)

	stats := []struct {
		glyph string
		value string
		color color.RGBA
	}{
		{glyphStar, f.Stars, p.Yellow},
		{glyphFork, f.Forks, p.Green},
		{glyphIssue, f.Issues, p.Red},
	}
	y := c.h - 40
	for i, st := range stats {
		x := 30 + float64(i)*150
		c.Text(st.glyph, x, y, bold(32), st.color)
		c.Text(st.value, x+40, y, bold(32), p.Text)
	}

	if f.HasLanguage {
		c.Text(glyphLanguage+" "+f.Language, c.w-200, y, regular(24), p.Blue)
	}

	return c.Scene, nil
}
