package layout

import (
	"image/color"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
)

// DetailedTopics is the topic cap of the detailed style.
const DetailedTopics = 5

type labeledStat struct {
	label string
	value string
	glyph string
	color color.RGBA
}

// Detailed renders a diagonal-gradient card with a two-column stat table
// (language, created, last push, license | stars, forks, issues), a topics strip, and
// large contributor avatars.
func Detailed(rec card.RepositoryRecord, opts card.RenderOptions, m draw.Measurer) (*draw.Scene, error) {
	c, err := newCanvas(rec, opts, m)
	if err != nil {
		return nil, err
	}
	p, f := c.pal, c.fields

	c.background(draw.Gradient(0, 0, c.w, c.h, p.Base, p.Mantle), 24)

	title := bold(56)
	c.Text(c.truncate(title, f.Owner+"/"+f.Name, c.w-150), 75, 100, title, p.Text)

	desc := regular(28)
	c.Text(c.truncate(desc, f.Description, c.w-150), 75, 160, desc, p.Subtext1)

	left := []labeledStat{
		{"Language", f.Language, "🔠", p.Text},
		{"Created", f.Created, "📅", p.Blue},
		{"Last Push", f.Pushed, "🔄", p.Green},
		{"License", f.License, "⚖", p.Mauve},
	}
	right := []labeledStat{
		{"Stars", f.Stars, glyphStar, p.Yellow},
		{"Forks", f.Forks, glyphFork, p.Green},
		{"Issues", f.Issues, glyphIssue, p.Red},
	}
	colWidth := (c.w - 150) / 2
	c.statColumn(left, 75)
	c.statColumn(right, 75+colWidth)

	c.topics(75, c.h-80, pillStrip{
		cap:     DetailedTopics,
		font:    regular(20),
		padding: 12,
		height:  36,
		rise:    24,
		gap:     12,
	})

	const size = 85
	c.avatars(avatarRow{size: size, step: size + 10, rightCX: c.w - 70, cy: c.h - size/2 - 40})

	return c.Scene, nil
}

// statColumn draws "glyph Label: value" rows starting at y=220.
func (c *canvas) statColumn(stats []labeledStat, x float64) {
	labelFont := bold(26)
	for i, st := range stats {
		y := 220 + float64(i)*60
		label := st.label + ":"
		c.Text(st.glyph, x, y, bold(32), st.color)
		c.Text(label, x+40, y, labelFont, c.pal.Subtext1)
		c.Text(st.value, x+40+c.measure(labelFont, label)+10, y, regular(26), c.pal.Text)
	}
}
