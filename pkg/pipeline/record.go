package pipeline

import (
	"context"
	"time"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/observability"
	"github.com/jasonlovesdoggo/gitsocial/pkg/recordio"
)

// RecordSource fetches repository records. The GitHub client implements it.
type RecordSource interface {
	FetchRecord(ctx context.Context, owner, repo string, refresh bool) (card.RepositoryRecord, error)
}

// Resolve returns the record described by opts: opts.Record if set, else the
// file at opts.RecordPath, else a fetch from the runner's source.
func (r *Runner) Resolve(ctx context.Context, opts Options) (card.RepositoryRecord, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return card.RepositoryRecord{}, err
	}
	switch {
	case opts.Record != nil:
		return *opts.Record, nil
	case opts.RecordPath != "":
		rec, err := recordio.Import(opts.RecordPath)
		if err == nil {
			r.Logger.Debug("loaded record", "path", opts.RecordPath, "repo", rec.FullName())
		}
		return rec, err
	}

	if r.Source == nil {
		return card.RepositoryRecord{}, errs.New(errs.ErrCodeInvalidInput, "no record source configured for %s/%s", opts.Owner, opts.Repo)
	}

	name := opts.Owner + "/" + opts.Repo
	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, name)
	start := time.Now()
	rec, err := r.Source.FetchRecord(ctx, opts.Owner, opts.Repo, opts.Refresh)
	hooks.OnFetchComplete(ctx, name, time.Since(start), err)
	if err != nil {
		return card.RepositoryRecord{}, err
	}
	r.Logger.Info("fetched repository",
		"repo", name,
		"stars", rec.StarCount,
		"contributors", len(rec.Contributors),
		"duration", time.Since(start))
	return rec, nil
}
