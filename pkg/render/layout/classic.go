package layout

import (
	"strconv"
	"strings"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/textlayout"
)

// classicMaxLines bounds the wrapped description so it stays clear of the
// avatar row; the last visible line is truncated with an ellipsis.
const classicMaxLines = 4

// Classic renders a window-chrome card: traffic-light dots, a colored
// owner / name title, a wrapped description, the star count in the top right
// corner, and a contributor count with avatars in the bottom right.
func Classic(rec card.RepositoryRecord, opts card.RenderOptions, m draw.Measurer) (*draw.Scene, error) {
	c, err := newCanvas(rec, opts, m)
	if err != nil {
		return nil, err
	}
	p, f := c.pal, c.fields

	c.background(draw.Solid(p.Base), 24)

	for i, col := range []draw.Paint{draw.Solid(p.Red), draw.Solid(p.Yellow), draw.Solid(p.Green)} {
		c.Fill(draw.Circle(40+float64(i)*30, 40, 10), col)
	}

	c.ownerSlashName(bold(48), 50, 120, c.w-50)

	desc := regular(32)
	maxWidth := c.w - 100
	lines := textlayout.WrapToLines(draw.MeasureFunc(m, desc), textlayout.Words(f.Description), maxWidth)
	if len(lines) > classicMaxLines {
		rest := strings.Join(lines[classicMaxLines-1:], " ")
		lines = append(lines[:classicMaxLines-1], c.truncate(desc, rest, maxWidth))
	}
	for i, line := range lines {
		c.Text(line, 50, 180+float64(i)*50, desc, p.Text)
	}

	c.rightAligned(glyphStar+" "+f.Stars, 50, 60, bold(36), p.Yellow)

	c.Text(strconv.Itoa(len(f.Contributors))+" Contributors", c.w-250, c.h-50, regular(24), p.Overlay0)

	const size = 60
	c.avatars(avatarRow{size: size, step: size + 10, rightCX: c.w - 70, cy: c.h - 80})

	return c.Scene, nil
}

// ownerSlashName draws the owner, separator and name segments from x to at most
// right. The owner is truncated first if it alone overflows; the separator
// and name are dropped when not even an ellipsis fits after it.
func (c *canvas) ownerSlashName(font draw.Font, x, y, right float64) {
	const sep = " / "
	p, f := c.pal, c.fields

	owner := c.truncate(font, f.Owner, right-x)
	c.Text(owner, x, y, font, p.Pink)
	x += c.measure(font, owner)

	room := right - x - c.measure(font, sep)
	if room < c.measure(font, textlayout.Ellipsis) {
		return
	}
	c.Text(sep, x, y, font, p.Text)
	c.Text(c.truncate(font, f.Name, room), x+c.measure(font, sep), y, font, p.Green)
}
