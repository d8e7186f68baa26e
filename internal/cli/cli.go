// Package cli implements the gitsocial command-line interface.
//
// The CLI renders social preview cards for GitHub repositories, fetches
// repository records for offline rendering, and manages the HTTP and avatar
// cache. It is built on cobra, logs through charmbracelet/log, and styles
// its output with lipgloss.
//
// # Commands
//
// The main commands are:
//   - render: Draw cards for a repository (argument, record file, or origin remote)
//   - fetch: Write a repository record as JSON or YAML
//   - themes, styles: List the available palettes and card layouts
//   - cache: Manage the response cache
//
// # Configuration
//
// Defaults are read from ~/.config/gitsocial/config.toml (or --config):
//
//	theme = "macchiato"
//	styles = ["classic", "modern"]
//	output_dir = "cards"
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[render]
//	font_file = "/usr/share/fonts/noto/NotoSans-Regular.ttf"
//	avatar_timeout = "15s"
//
// Flags override the file. GITHUB_TOKEN (or the variable named by
// github.token_env) authenticates API requests.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jasonlovesdoggo/gitsocial/pkg/avatar"
	"github.com/jasonlovesdoggo/gitsocial/pkg/buildinfo"
	"github.com/jasonlovesdoggo/gitsocial/pkg/cache"
	"github.com/jasonlovesdoggo/gitsocial/pkg/fonts"
	"github.com/jasonlovesdoggo/gitsocial/pkg/integrations/github"
	"github.com/jasonlovesdoggo/gitsocial/pkg/pipeline"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gitsocial"

	// redisPrefix namespaces keys in a shared Redis.
	redisPrefix = appName + ":"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	config     *Config
}

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), config: &Config{}}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "gitsocial renders social preview cards for GitHub repositories",
		Long:          `gitsocial draws Open Graph style preview images for a GitHub repository in one of six card styles and four Catppuccin themes.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				registerDebugHooks(c.Logger)
			}
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/gitsocial/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Factories
// =============================================================================

// newCache opens the configured cache backend. Without a usable cache
// directory the CLI runs uncached rather than failing.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	backend := c.config.Cache.Backend
	if noCache || backend == backendNone {
		return cache.NewNullCache(), nil
	}
	if backend == backendRedis {
		return cache.NewRedisCache(ctx, c.config.Cache.RedisURL, redisPrefix)
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory, running uncached", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the configured cache directory or the per-user default
// (~/.cache/gitsocial on Linux).
func (c *CLI) cacheDir() (string, error) {
	if c.config.Cache.Dir != "" {
		return c.config.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// newGitHub creates a GitHub client caching into ch.
func (c *CLI) newGitHub(ch cache.Cache) *github.Client {
	ttl := c.config.Cache.TTL.Duration
	if ttl == 0 {
		ttl = cache.DefaultHTTPTTL
	}
	gh := github.NewClient(ch, c.config.githubToken(), ttl)
	if c.config.GitHub.APIURL != "" {
		gh.WithBaseURL(c.config.GitHub.APIURL)
	}
	return gh
}

// newFonts loads path, or the config's font file, falling back to the
// bundled Go fonts.
func (c *CLI) newFonts(path string) (*fonts.Set, error) {
	if path == "" {
		path = c.config.Render.FontFile
	}
	if path == "" {
		return fonts.Default(), nil
	}
	c.Logger.Debug("loading font", "path", path)
	return fonts.Load(path)
}

// runnerDeps bundles a runner with the resources to release after use.
type runnerDeps struct {
	runner *pipeline.Runner
	cache  cache.Cache
}

func (d *runnerDeps) Close() error {
	return d.cache.Close()
}

// newRunner wires the cache, GitHub client, avatar loader, fonts, and
// renderer into a pipeline runner.
func (c *CLI) newRunner(ctx context.Context, noCache bool, fontPath string) (*runnerDeps, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	fs, err := c.newFonts(fontPath)
	if err != nil {
		ch.Close()
		return nil, err
	}
	avatars := avatar.NewLoader(ch, avatar.WithLogger(c.Logger))
	renderer := render.New(fs, avatars, c.Logger)
	return &runnerDeps{
		runner: pipeline.NewRunner(c.newGitHub(ch), renderer, c.Logger),
		cache:  ch,
	}, nil
}

// avatarTimeout returns the configured avatar wait, or the pipeline default.
func (c *CLI) avatarTimeout() time.Duration {
	if d := c.config.Render.AvatarTimeout.Duration; d > 0 {
		return d
	}
	return pipeline.DefaultAvatarTimeout
}

// workingDir returns the current directory for origin-remote detection.
func workingDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
