package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/recordio"
)

// defaultFetchTimeout bounds a fetch, including retries.
const defaultFetchTimeout = 2 * time.Minute

type fetchOpts struct {
	output  string
	format  string
	refresh bool
	noCache bool
	timeout time.Duration
}

// fetchCommand creates the fetch command, which writes a repository record
// for offline rendering.
func (c *CLI) fetchCommand() *cobra.Command {
	opts := fetchOpts{timeout: defaultFetchTimeout}

	cmd := &cobra.Command{
		Use:   "fetch [owner/repo | url]",
		Short: "Fetch a repository record from GitHub",
		Long: `Fetch repository metadata and contributors from GitHub and write them
as a record file that "gitsocial render --from" can draw without network
access. Without -o the record is printed to stdout.`,
		Example: `  gitsocial fetch JasonLovesDoggo/gitsocial -o record.yaml
  gitsocial fetch https://github.com/octocat/hello-world --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFetch(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.json, .yaml, .yml)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(recordio.YAML), "stdout format: yaml, json")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached API responses")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the cache")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "timeout for GitHub requests")

	return cmd
}

func (c *CLI) runFetch(cmd *cobra.Command, args []string, opts fetchOpts) error {
	owner, repo, err := resolveRepo(args)
	if err != nil {
		return err
	}
	format, err := recordio.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.output != "" {
		if err := errs.ValidatePath(opts.output); err != nil {
			return err
		}
		if _, err := recordio.FormatFromPath(opts.output); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	ch, err := c.newCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer ch.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Fetching "+owner+"/"+repo)
	spinner.Start()
	rec, err := c.newGitHub(ch).FetchRecord(ctx, owner, repo, opts.refresh)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
		} else {
			spinner.StopWithError(errs.UserMessage(err))
		}
		return err
	}
	prog.done("Fetched " + rec.FullName())

	if opts.output == "" {
		spinner.Stop()
		return recordio.Write(cmd.OutOrStdout(), rec, format)
	}
	if err := recordio.Export(rec, opts.output); err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess("Fetched " + StyleHighlight.Render(rec.FullName()))
	printRecordSummary(rec)
	printFile(opts.output)
	printNextStep("Render it offline", "gitsocial render --from "+opts.output)
	return nil
}

func printRecordSummary(rec card.RepositoryRecord) {
	printKeyValue("Stars", card.FormatCount(rec.StarCount))
	printKeyValue("Forks", card.FormatCount(rec.ForkCount))
	printKeyValue("Issues", card.FormatCount(rec.OpenIssueCount))
	if rec.Language != "" {
		printKeyValue("Language", rec.Language)
	}
	printKeyValue("Topics", strconv.Itoa(len(rec.Topics)))
	printKeyValue("Contributors", strconv.Itoa(len(rec.Contributors)))
}
