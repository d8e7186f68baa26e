package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/integrations/github"
	"github.com/jasonlovesdoggo/gitsocial/pkg/palette"
	"github.com/jasonlovesdoggo/gitsocial/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	from        string   // record file instead of GitHub
	theme       string   // palette id
	styles      []string // style ids; empty means config or all
	width       int      // card width in pixels
	height      int      // card height in pixels
	output      string   // output directory
	font        string   // TrueType/OpenType file replacing the Go fonts
	refresh     bool     // bypass cached API responses
	noCache     bool     // disable the cache entirely
	interactive bool     // pick the theme in a TUI
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [owner/repo | url]",
		Short: "Render social preview cards for a repository",
		Long: `Render social preview cards for a GitHub repository.

The repository is taken from the argument, from --from (a record written by
"gitsocial fetch"), or from the origin remote of the current git checkout.
One PNG per style is written to the output directory.`,
		Example: `  gitsocial render JasonLovesDoggo/gitsocial
  gitsocial render --style classic,modern --theme latte -o cards
  gitsocial render --from record.yaml --width 1280 --height 640`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "render a record file (.json, .yaml) instead of fetching")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme: "+themeList()+" (default mocha)")
	cmd.Flags().StringSliceVarP(&opts.styles, "style", "s", nil, "card style(s), comma-separated or repeated (default all)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "card width in pixels (default 1200)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "card height in pixels (default 600)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default current directory)")
	cmd.Flags().StringVar(&opts.font, "font", "", "font file used for all text")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached API responses")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the cache")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose the theme interactively")

	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return themeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return styleNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(ctx context.Context, args []string, opts renderOpts) error {
	popts, err := c.pipelineOptions(args, opts)
	if err != nil {
		return err
	}
	if opts.interactive {
		theme, err := pickTheme(popts.Theme)
		if err != nil {
			return err
		}
		popts.Theme = theme
	}

	outDir := firstNonEmpty(opts.output, c.config.OutputDir, ".")
	if err := errs.ValidatePath(outDir); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "create output directory %s", outDir)
	}

	deps, err := c.newRunner(ctx, opts.noCache, opts.font)
	if err != nil {
		return err
	}
	defer deps.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering "+describeSource(popts))
	spinner.Start()
	result, err := deps.runner.Execute(ctx, popts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
		} else {
			spinner.StopWithError(errs.UserMessage(err))
		}
		return err
	}
	spinner.Stop()

	written, err := writeArtifacts(outDir, result)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d of %d cards", len(written), len(result.Requested)))

	if len(written) > 0 {
		printSuccess("Rendered %s in %s", StyleHighlight.Render(result.Record.FullName()), popts.Theme.Title())
		for _, path := range written {
			printFile(path)
		}
	}
	for _, style := range result.FailedStyles() {
		printWarning("%s: %s", style, errs.UserMessage(result.Failures[style]))
	}
	if len(written) == 0 {
		return errs.New(errs.ErrCodeInternal, "no cards rendered")
	}
	return nil
}

// pipelineOptions merges flags, config, and the repository source into
// pipeline options.
func (c *CLI) pipelineOptions(args []string, opts renderOpts) (pipeline.Options, error) {
	popts := pipeline.Options{
		Refresh:       opts.refresh,
		Width:         firstPositive(opts.width, c.config.Width),
		Height:        firstPositive(opts.height, c.config.Height),
		AvatarTimeout: c.avatarTimeout(),
	}

	theme, err := palette.ParseTheme(firstNonEmpty(opts.theme, c.config.Theme, string(palette.DefaultTheme)))
	if err != nil {
		return popts, err
	}
	popts.Theme = theme

	styles := opts.styles
	if len(styles) == 0 {
		styles = c.config.Styles
	}
	if popts.Styles, err = card.ParseStyles(strings.Join(styles, ",")); err != nil {
		return popts, err
	}

	switch {
	case opts.from != "" && len(args) > 0:
		return popts, errs.New(errs.ErrCodeInvalidInput, "pass either a repository or --from, not both")
	case opts.from != "":
		popts.RecordPath = opts.from
	default:
		popts.Owner, popts.Repo, err = resolveRepo(args)
	}
	return popts, err
}

// resolveRepo parses the repository argument, or detects it from the origin
// remote of the current directory.
func resolveRepo(args []string) (owner, repo string, err error) {
	if len(args) > 0 {
		return github.ParseRepoRef(args[0])
	}
	return github.DetectRemote(workingDir())
}

// writeArtifacts writes one PNG per rendered style, named
// "<repo>-preview-<style>.png", and returns the paths in request order.
func writeArtifacts(dir string, result *pipeline.Result) ([]string, error) {
	base := artifactBase(result.Record.Name)
	var paths []string
	for _, style := range result.Styles() {
		path := filepath.Join(dir, fmt.Sprintf("%s-preview-%s.png", base, style))
		if err := os.WriteFile(path, result.Artifacts[style], 0o644); err != nil {
			return paths, errs.Wrap(errs.ErrCodeInvalidInput, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// artifactBase makes a record name safe to use as a file name inside the
// output directory. Record files are not validated, so separators and
// leading dots are replaced; an empty result becomes "card".
func artifactBase(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	safe = strings.TrimLeft(safe, ".")
	if safe == "" {
		return "card"
	}
	return safe
}

// pickTheme runs the interactive theme picker starting at current.
func pickTheme(current palette.ThemeID) (palette.ThemeID, error) {
	final, err := tea.NewProgram(NewThemeListModel(current), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInternal, err, "theme picker")
	}
	m, ok := final.(ThemeListModel)
	if !ok || m.Selected == "" {
		return "", context.Canceled
	}
	return m.Selected, nil
}

func describeSource(o pipeline.Options) string {
	if o.RecordPath != "" {
		return o.RecordPath
	}
	return o.Owner + "/" + o.Repo
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
