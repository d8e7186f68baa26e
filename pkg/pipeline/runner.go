package pipeline

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/observability"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/surface"
)

// Runner executes pipeline runs.
//
// The Runner is stateless apart from its collaborators; multiple goroutines
// can share one Runner with different options.
type Runner struct {
	Source   RecordSource
	Renderer *render.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil source restricts the runner to records
// passed in or read from files. A nil logger discards output.
func NewRunner(src RecordSource, renderer *render.Renderer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Source: src, Renderer: renderer, Logger: logger}
}

// Execute runs the complete resolve → render → export pipeline.
//
// It returns an error only when no record could be resolved or ctx was
// canceled; per-style failures are reported in Result.Failures.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result := &Result{
		RunID:     uuid.New().String(),
		Requested: opts.Styles,
		Artifacts: make(map[card.StyleID][]byte, len(opts.Styles)),
		Failures:  make(map[card.StyleID]error),
	}
	logger := r.Logger.With("run", result.RunID[:8])
	runner := &Runner{Source: r.Source, Renderer: r.Renderer, Logger: logger}

	fetchStart := time.Now()
	rec, err := runner.Resolve(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Record = rec
	result.Stats.FetchTime = time.Since(fetchStart)

	// Avatar loads outlive Render; canceling on return stops any that are
	// still in flight after export.
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderStart := time.Now()
	surfaces := runner.renderAll(loadCtx, rec, opts, result.Failures)
	result.Stats.RenderTime = time.Since(renderStart)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exportStart := time.Now()
	if err := runner.exportAll(ctx, surfaces, opts, result); err != nil {
		return nil, err
	}
	result.Stats.ExportTime = time.Since(exportStart)

	logger.Info("generated cards",
		"repo", rec.FullName(),
		"styles", len(result.Artifacts),
		"failed", len(result.Failures),
		"duration", time.Since(fetchStart))
	return result, nil
}

// renderAll draws each style on its own surface, back-to-back on the calling
// goroutine. Styles that fail are recorded in failures and omitted from the
// returned map.
func (r *Runner) renderAll(ctx context.Context, rec card.RepositoryRecord, opts Options, failures map[card.StyleID]error) map[card.StyleID]*surface.Surface {
	surfaces := make(map[card.StyleID]*surface.Surface, len(opts.Styles))
	for _, style := range opts.Styles {
		s := r.Renderer.NewSurface()
		if err := r.Renderer.Render(ctx, s, rec, opts.RenderOptions(style)); err != nil {
			r.Logger.Warn("style failed", "style", style, "error", err)
			failures[style] = err
			continue
		}
		surfaces[style] = s
	}
	return surfaces
}

// exportAll waits for each surface's avatars, bounded by opts.AvatarTimeout,
// and encodes it as PNG. A surface whose avatars are still loading at the
// deadline is exported without them.
func (r *Runner) exportAll(ctx context.Context, surfaces map[card.StyleID]*surface.Surface, opts Options, result *Result) error {
	waitCtx, cancel := ctx, context.CancelFunc(func() {})
	if opts.AvatarTimeout > 0 {
		waitCtx, cancel = context.WithTimeout(ctx, opts.AvatarTimeout)
	}
	defer cancel()

	hooks := observability.Pipeline()
	var mu sync.Mutex
	var g errgroup.Group
	for style, s := range surfaces {
		g.Go(func() error {
			if opts.AvatarTimeout >= 0 {
				if err := s.Wait(waitCtx); err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					r.Logger.Warn("avatars still loading, exporting without them", "style", style, "timeout", opts.AvatarTimeout)
				}
			}

			var buf bytes.Buffer
			err := s.EncodePNG(&buf)
			hooks.OnExport(ctx, string(style), buf.Len(), err)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures[style] = err
				return nil
			}
			result.Artifacts[style] = buf.Bytes()
			r.Logger.Debug("encoded card", "style", style, "bytes", buf.Len())
			return nil
		})
	}
	return g.Wait()
}
