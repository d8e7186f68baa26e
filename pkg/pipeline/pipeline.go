// Package pipeline provides the card generation pipeline for gitsocial.
//
// The pipeline resolves a repository record, renders it in every requested
// style, waits for avatar composites, and encodes each card as PNG. The CLI
// and tests share this logic so that behavior stays consistent across entry
// points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: use a record passed in, read a record file, or fetch from GitHub
//  2. Render: draw each style back-to-back on its own surface
//  3. Export: wait for avatars (bounded by AvatarTimeout) and encode PNGs
//
// A style that fails to render is recorded in [Result.Failures]; the other
// styles still render.
//
// # Usage
//
//	runner := pipeline.NewRunner(github.NewClient(c, token, 0), renderer, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Owner:  "JasonLovesDoggo",
//	    Repo:   "gitsocial",
//	    Theme:  palette.Mocha,
//	    Styles: []card.StyleID{card.StyleClassic, card.StyleModern},
//	})
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts[card.StyleClassic]
package pipeline

import (
	"sort"
	"time"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/palette"
)

// DefaultAvatarTimeout bounds how long Execute waits for avatar composites
// before exporting whatever has landed.
const DefaultAvatarTimeout = 10 * time.Second

// Options contains all configuration for a pipeline run.
type Options struct {
	// Record source, in order of precedence.
	Record     *card.RepositoryRecord `json:"-"`
	RecordPath string                 `json:"record_path,omitempty"`
	Owner      string                 `json:"owner,omitempty"`
	Repo       string                 `json:"repo,omitempty"`
	Refresh    bool                   `json:"refresh,omitempty"` // bypass the HTTP cache

	// Render options
	Theme  palette.ThemeID `json:"theme,omitempty"`
	Styles []card.StyleID  `json:"styles,omitempty"`
	Width  int             `json:"width,omitempty"`
	Height int             `json:"height,omitempty"`

	// AvatarTimeout bounds the wait for avatar composites. Zero uses
	// DefaultAvatarTimeout; a negative value exports without waiting.
	AvatarTimeout time.Duration `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Record is the resolved repository record.
	Record card.RepositoryRecord

	// Requested lists the styles that were rendered, deduplicated, in
	// request order.
	Requested []card.StyleID

	// Artifacts contains PNG-encoded cards keyed by style.
	Artifacts map[card.StyleID][]byte

	// Failures contains the error for every style that did not produce an
	// artifact.
	Failures map[card.StyleID]error

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FetchTime  time.Duration
	RenderTime time.Duration
	ExportTime time.Duration
}

// Styles returns the styles that produced an artifact, in request order.
func (r *Result) Styles() []card.StyleID {
	var out []card.StyleID
	for _, s := range r.Requested {
		if _, ok := r.Artifacts[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// FailedStyles returns the styles that failed, sorted by name.
func (r *Result) FailedStyles() []card.StyleID {
	out := make([]card.StyleID, 0, len(r.Failures))
	for s := range r.Failures {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidateAndSetDefaults checks that a record source is given and applies
// defaults. It is idempotent.
//
// Unknown themes and styles are not rejected here; they surface as
// per-style failures so that the remaining styles still render.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Record == nil && o.RecordPath == "" {
		if o.Owner == "" || o.Repo == "" {
			return errs.New(errs.ErrCodeInvalidInput, "a record, record file, or owner/repo is required")
		}
		if err := errs.ValidateOwner(o.Owner); err != nil {
			return err
		}
		if err := errs.ValidateRepoName(o.Repo); err != nil {
			return err
		}
	}
	if o.Width < 0 || o.Height < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "card size must not be negative (got %dx%d)", o.Width, o.Height)
	}
	if o.Theme == "" {
		o.Theme = palette.DefaultTheme
	}
	if len(o.Styles) == 0 {
		o.Styles = card.Styles()
	}
	o.Styles = dedupe(o.Styles)
	if o.AvatarTimeout == 0 {
		o.AvatarTimeout = DefaultAvatarTimeout
	}
	o.validated = true
	return nil
}

// RenderOptions returns the card options for one style.
func (o *Options) RenderOptions(style card.StyleID) card.RenderOptions {
	return card.RenderOptions{Theme: o.Theme, Style: style, Width: o.Width, Height: o.Height}
}

func dedupe(styles []card.StyleID) []card.StyleID {
	seen := make(map[card.StyleID]bool, len(styles))
	out := make([]card.StyleID, 0, len(styles))
	for _, s := range styles {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
