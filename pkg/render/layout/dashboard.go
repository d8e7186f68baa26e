package layout

import (
	"image/color"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/textlayout"
)

// DashboardTopics is the topic cap of the dashboard style.
const DashboardTopics = 4

// TrendPoints is the illustrative series drawn as the dashboard sparkline.
// It is decoration, not repository data.
var TrendPoints = []float64{3, 5, 4, 7, 6, 9, 8, 11, 10, 14, 12, 16}

// Dashboard renders a horizontal-gradient card with a 2×2 grid of stat
// tiles, a trend sparkline, and a topics strip.
func Dashboard(rec card.RepositoryRecord, opts card.RenderOptions, m draw.Measurer) (*draw.Scene, error) {
	c, err := newCanvas(rec, opts, m)
	if err != nil {
		return nil, err
	}
	p, f := c.pal, c.fields

	c.background(draw.Gradient(0, 0, c.w, 0, p.Base, p.Mantle), 24)

	title := bold(48)
	c.Text(c.truncate(title, f.Owner+"/"+f.Name, c.w/2), 50, 80, title, p.Text)

	c.sparkline(c.w/2+100, 40, c.w/2-150, 80)

	tiles := []struct {
		label string
		value string
		glyph string
		color color.RGBA
	}{
		{"Stars", f.Stars, glyphStar, p.Yellow},
		{"Forks", f.Forks, glyphFork, p.Green},
		{"Issues", f.Issues, glyphIssue, p.Red},
		{"Language", f.Language, glyphLanguage, p.Blue},
	}
	const (
		gridTop    = 160
		tileHeight = 120
	)
	tileWidth := (c.w - 100) / 2
	value := bold(48)
	for i, t := range tiles {
		x := 50 + float64(i%2)*tileWidth
		y := gridTop + float64(i/2)*tileHeight
		c.Fill(textlayout.RoundedRectPath(x, y, tileWidth-20, tileHeight-20, 16), draw.Solid(p.Surface0))
		c.Text(t.glyph, x+20, y+40, bold(32), t.color)
		c.Text(t.label, x+70, y+38, regular(20), p.Subtext1)
		c.Text(c.truncate(value, t.value, tileWidth-60), x+20, y+90, value, p.Text)
	}

	c.topics(50, c.h-50, pillStrip{
		cap:     DashboardTopics,
		font:    medium(18),
		padding: 16,
		height:  40,
		rise:    30,
		gap:     10,
	})

	return c.Scene, nil
}

// sparkline plots TrendPoints inside the box (x, y, w, h): a filled area in
// surface0 under a blue line.
func (c *canvas) sparkline(x, y, w, h float64) {
	lo, hi := TrendPoints[0], TrendPoints[0]
	for _, v := range TrendPoints {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	step := w / float64(len(TrendPoints)-1)

	pts := make([]float64, 0, 2*len(TrendPoints))
	for i, v := range TrendPoints {
		pts = append(pts, x+float64(i)*step, y+h-(v-lo)/span*h)
	}

	area := draw.Polyline(pts...)
	area.LineTo(x+w, y+h)
	area.LineTo(x, y+h)
	area.Close()
	c.Fill(area, draw.Solid(c.pal.Surface0))
	c.Stroke(draw.Polyline(pts...), c.pal.Blue, 3)
}
