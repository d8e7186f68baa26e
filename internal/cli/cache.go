package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jasonlovesdoggo/gitsocial/pkg/cache"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the API response and avatar cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached API responses and avatars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.config.Cache.Backend {
			case backendNone:
				printInfo("Caching is disabled")
				return nil
			case backendRedis:
				rc, err := cache.NewRedisCache(cmd.Context(), c.config.Cache.RedisURL, redisPrefix)
				if err != nil {
					return err
				}
				defer rc.Close()
				if err := rc.Clear(cmd.Context()); err != nil {
					return errs.Wrap(errs.ErrCodeNetwork, err, "clear redis cache")
				}
				printSuccess("Cleared cached entries under %s", redisPrefix)
				return nil
			}

			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			if err := fc.Clear(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess("Cleared cache")
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory (or Redis URL)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.config.Cache.Backend == backendRedis {
				fmt.Fprintln(cmd.OutOrStdout(), c.config.Cache.RedisURL)
				return nil
			}
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
