package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jasonlovesdoggo/gitsocial/pkg/observability"
)

func TestDebugHooksLogEvents(t *testing.T) {
	t.Cleanup(observability.Reset)
	var buf bytes.Buffer
	registerDebugHooks(newLogger(&buf, LogDebug))

	ctx := context.Background()
	observability.Render().OnRenderStart(ctx, "classic")
	observability.Render().OnAvatar(ctx, "classic", "octocat", false, nil)
	observability.Pipeline().OnExport(ctx, "classic", 2048, nil)
	observability.Cache().OnCacheMiss(ctx, "avatar")
	observability.HTTP().OnResponse(ctx, "GET", "api.github.com", "/repos/a/b", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"render start", "login=octocat", "bytes=2048", "cache miss", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugHooksQuietAtInfo(t *testing.T) {
	t.Cleanup(observability.Reset)
	var buf bytes.Buffer
	registerDebugHooks(newLogger(&buf, LogInfo))

	observability.Render().OnRenderStart(context.Background(), "classic")
	if buf.Len() != 0 {
		t.Errorf("info logger wrote %q", buf.String())
	}
}
