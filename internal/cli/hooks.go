package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jasonlovesdoggo/gitsocial/pkg/observability"
)

// debugHooks logs every observability event at debug level. It is
// registered by --verbose.
type debugHooks struct {
	logger *log.Logger
}

var (
	_ observability.RenderHooks   = debugHooks{}
	_ observability.PipelineHooks = debugHooks{}
	_ observability.CacheHooks    = debugHooks{}
	_ observability.HTTPHooks     = debugHooks{}
)

func registerDebugHooks(l *log.Logger) {
	h := debugHooks{logger: l.WithPrefix("hooks")}
	observability.SetRenderHooks(h)
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h debugHooks) OnRenderStart(_ context.Context, style string) {
	h.logger.Debug("render start", "style", style)
}

func (h debugHooks) OnRenderComplete(_ context.Context, style string, commands int, d time.Duration, err error) {
	h.logger.Debug("render done", "style", style, "commands", commands, "took", d, "err", err)
}

func (h debugHooks) OnAvatar(_ context.Context, style, login string, drawn bool, err error) {
	h.logger.Debug("avatar", "style", style, "login", login, "drawn", drawn, "err", err)
}

func (h debugHooks) OnFetchStart(_ context.Context, repo string) {
	h.logger.Debug("fetch start", "repo", repo)
}

func (h debugHooks) OnFetchComplete(_ context.Context, repo string, d time.Duration, err error) {
	h.logger.Debug("fetch done", "repo", repo, "took", d, "err", err)
}

func (h debugHooks) OnExport(_ context.Context, style string, bytes int, err error) {
	h.logger.Debug("export", "style", style, "bytes", bytes, "err", err)
}

func (h debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "kind", keyType)
}

func (h debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "kind", keyType)
}

func (h debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "kind", keyType, "bytes", size)
}

func (h debugHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h debugHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "path", path, "status", status, "took", d)
}

func (h debugHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
