package layout

import (
	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
)

// Minimal renders the repository name without its owner, a one-line
// description, the star count, and the language when known.
func Minimal(rec card.RepositoryRecord, opts card.RenderOptions, m draw.Measurer) (*draw.Scene, error) {
	c, err := newCanvas(rec, opts, m)
	if err != nil {
		return nil, err
	}
	p, f := c.pal, c.fields

	c.background(draw.Solid(p.Base), 24)

	name := bold(72)
	c.Text(c.truncate(name, f.Name, c.w-100), 50, 120, name, p.Text)

	desc := regular(28)
	c.Text(c.truncate(desc, f.Description, c.w-100), 50, 180, desc, p.Subtext1)

	c.rightAligned(glyphStar+" "+f.Stars, 50, 70, bold(36), p.Yellow)

	if f.HasLanguage {
		c.Text(glyphLanguage+" "+f.Language, 50, c.h-60, regular(28), p.Blue)
	}

	return c.Scene, nil
}
