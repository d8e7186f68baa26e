package render

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jasonlovesdoggo/gitsocial/pkg/avatar"
	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/observability"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/layout"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/surface"
)

// Fonts measures text for generators and supplies faces to surfaces.
type Fonts interface {
	draw.Measurer
	surface.FaceSource
}

// Renderer is the render dispatcher.
type Renderer struct {
	fonts   Fonts
	avatars avatar.Source
	logger  *log.Logger

	// mu serializes measurement and synchronous drawing; font faces are not
	// safe for concurrent use.
	mu sync.Mutex
}

// New creates a Renderer. A nil avatars source renders cards without
// avatars; a nil logger discards log output.
func New(fonts Fonts, avatars avatar.Source, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{fonts: fonts, avatars: avatars, logger: logger}
}

// NewSurface returns an empty surface that draws text with the renderer's
// fonts.
func (r *Renderer) NewSurface() *surface.Surface {
	return surface.New(0, 0, r.fonts)
}

// Render resets s to the requested size, draws rec in the requested style,
// and schedules avatar composites on s. Call s.Wait to await them.
//
// An unknown style or theme leaves s cleared and returns a configuration
// error (see errors.IsConfiguration). A nil s returns MISSING_SURFACE.
func (r *Renderer) Render(ctx context.Context, s *surface.Surface, rec card.RepositoryRecord, opts card.RenderOptions) error {
	if s == nil {
		return errs.New(errs.ErrCodeMissingSurface, "no surface to render %s onto", opts.Style)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	opts = opts.Normalized()
	style := string(opts.Style)
	hooks := observability.Render()

	r.mu.Lock()
	start := time.Now()
	gen := s.Reset(opts.Width, opts.Height)
	hooks.OnRenderStart(ctx, style)

	scene, err := r.draw(s, rec, opts)
	hooks.OnRenderComplete(ctx, style, commandCount(scene), time.Since(start), err)
	r.mu.Unlock()

	if err != nil {
		r.logger.Warn("render failed", "style", style, "theme", opts.Theme, "error", err)
		return err
	}
	r.logger.Debug("rendered card",
		"style", style,
		"theme", opts.Theme,
		"size", [2]int{opts.Width, opts.Height},
		"commands", len(scene.Commands),
		"duration", time.Since(start))

	r.scheduleAvatars(ctx, s, gen, style, scene.Avatars())
	return nil
}

func (r *Renderer) draw(s *surface.Surface, rec card.RepositoryRecord, opts card.RenderOptions) (*draw.Scene, error) {
	generate, err := layout.For(opts.Style)
	if err != nil {
		return nil, err
	}
	scene, err := generate(rec, opts, r.fonts)
	if err != nil {
		return nil, err
	}
	s.Apply(scene)
	return scene, nil
}

func (r *Renderer) scheduleAvatars(ctx context.Context, s *surface.Surface, gen uint64, style string, slots []draw.Avatar) {
	if r.avatars == nil || len(slots) == 0 {
		return
	}
	hooks := observability.Render()
	for _, slot := range slots {
		s.Go(func() {
			img, err := r.avatars.Load(ctx, slot.URL, int(slot.Size))
			if err != nil {
				r.logger.Debug("avatar skipped", "style", style, "login", slot.Login, "error", err)
				hooks.OnAvatar(ctx, style, slot.Login, false, err)
				return
			}
			drawn := s.Composite(gen, img, slot)
			if !drawn {
				r.logger.Debug("avatar discarded, surface was redrawn", "style", style, "login", slot.Login)
			}
			hooks.OnAvatar(ctx, style, slot.Login, drawn, nil)
		})
	}
}

func commandCount(s *draw.Scene) int {
	if s == nil {
		return 0
	}
	return len(s.Commands)
}
