// Package surface implements the raster draw surface that scenes are
// executed on.
//
// A Surface wraps a gg context. Every Reset replaces the canvas and advances
// a generation counter; asynchronous avatar composites capture the
// generation when they are scheduled and are dropped if the surface has been
// reset since.
package surface

import (
	"context"
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
)

// FaceSource supplies font faces for text commands.
type FaceSource interface {
	Face(f draw.Font) font.Face
}

// Surface is a resizable canvas. All methods are safe for concurrent use.
type Surface struct {
	faces FaceSource

	mu  sync.Mutex
	dc  *gg.Context
	gen uint64

	pending sync.WaitGroup
}

// New creates an empty width × height surface drawing text with faces.
func New(width, height int, faces FaceSource) *Surface {
	return &Surface{faces: faces, dc: gg.NewContext(width, height)}
}

// Reset resizes the surface, clears all pixels, and starts a new generation.
// It returns the new generation.
func (s *Surface) Reset(width, height int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dc = gg.NewContext(width, height)
	s.gen++
	return s.gen
}

// Generation returns the current generation.
func (s *Surface) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Width returns the canvas width in pixels.
func (s *Surface) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Width()
}

// Height returns the canvas height in pixels.
func (s *Surface) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Height()
}

// Apply executes the synchronous commands of scene in order. Avatar commands
// are skipped; see Composite.
func (s *Surface) Apply(scene *draw.Scene) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cmd := range scene.Commands {
		switch c := cmd.(type) {
		case draw.Fill:
			s.trace(c.Path)
			s.setFill(c.Paint)
			s.dc.Fill()
		case draw.Stroke:
			s.trace(c.Path)
			s.dc.SetColor(c.Color)
			s.dc.SetLineWidth(c.Width)
			s.dc.Stroke()
		case draw.Text:
			s.dc.SetFontFace(s.faces.Face(c.Font))
			s.dc.SetColor(c.Color)
			s.dc.DrawString(c.Text, c.X, c.Y)
		}
	}
}

func (s *Surface) trace(p draw.Path) {
	s.dc.ClearPath()
	for _, seg := range p {
		switch seg.Kind {
		case draw.SegMoveTo:
			s.dc.MoveTo(seg.X, seg.Y)
		case draw.SegLineTo:
			s.dc.LineTo(seg.X, seg.Y)
		case draw.SegArc:
			s.dc.DrawArc(seg.X, seg.Y, seg.R, seg.A0, seg.A1)
		case draw.SegClose:
			s.dc.ClosePath()
		}
	}
}

func (s *Surface) setFill(p draw.Paint) {
	if p.Gradient == nil {
		s.dc.SetColor(p.Color)
		return
	}
	g := p.Gradient
	grad := gg.NewLinearGradient(g.X0, g.Y0, g.X1, g.Y1)
	for _, stop := range g.Stops {
		grad.AddColorStop(stop.Offset, stop.Color)
	}
	s.dc.SetFillStyle(grad)
}

// Composite draws img clipped to the circle described by a, but only if the
// surface is still at generation gen. It reports whether anything was drawn.
// img is expected to be a.Size square.
func (s *Surface) Composite(gen uint64, img image.Image, a draw.Avatar) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	r := a.Size / 2
	s.dc.Push()
	s.dc.DrawCircle(a.CX, a.CY, r)
	s.dc.Clip()
	s.dc.DrawImage(img, int(a.CX-r), int(a.CY-r))
	s.dc.ResetClip()
	s.dc.Pop()
	return true
}

// Go runs fn on a new goroutine tracked by Wait.
func (s *Surface) Go(fn func()) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		fn()
	}()
}

// Wait blocks until every function started with Go has returned or ctx is
// done.
func (s *Surface) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Image returns a snapshot of the current pixels.
func (s *Surface) Image() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return imaging.Clone(s.dc.Image())
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}
