package cli

import (
	"context"
	"os"
)

// Execute runs the gitsocial CLI with os.Args, logging to stderr.
//
// Logging:
//   - Default: info level
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
