package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	"github.com/jasonlovesdoggo/gitsocial/pkg/observability"
	"github.com/jasonlovesdoggo/gitsocial/pkg/recordio"
)

func restoreStdout() { stdout = os.Stdout }

// isolate points the default config and cache locations at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("GITHUB_TOKEN", "")
	var out bytes.Buffer
	stdout = &out
	t.Cleanup(restoreStdout)
	t.Cleanup(observability.Reset)
	return dir
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// githubServer serves one repository, its contributors, and their avatars.
func githubServer(t *testing.T) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/JasonLovesDoggo/gitsocial":
			json.NewEncoder(w).Encode(map[string]any{
				"name":              "gitsocial",
				"description":       "A GitHub card generator",
				"owner":             map[string]string{"login": "JasonLovesDoggo"},
				"language":          "TypeScript",
				"stargazers_count":  1234,
				"forks_count":       3,
				"open_issues_count": 1,
				"topics":            []string{"nextjs", "canvas"},
			})
		case "/repos/JasonLovesDoggo/gitsocial/contributors":
			json.NewEncoder(w).Encode([]map[string]string{
				{"login": "JasonLovesDoggo", "avatar_url": server.URL + "/avatars/1", "type": "User"},
			})
		case "/avatars/1":
			w.Header().Set("Content-Type", "image/png")
			png.Encode(w, imaging.New(64, 64, color.NRGBA{R: 255, A: 255}))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"render", "fetch", "themes", "styles", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVerboseSetsDebugLevel(t *testing.T) {
	isolate(t)
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"-v", "styles"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestStylesCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "styles")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range card.Styles() {
		if !strings.Contains(out, string(s)) {
			t.Errorf("styles output missing %q", s)
		}
	}
}

func TestThemesCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "themes")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"latte", "frappe", "macchiato", "mocha", "#1e1e2e"} {
		if !strings.Contains(out, name) {
			t.Errorf("themes output missing %q", name)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "gitsocial") {
		t.Error("bash completion should mention the program")
	}
	if _, err := run(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestCachePathUsesConfig(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "cards-cache")
	cfg := writeConfig(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n")
	out, err := run(t, "--config", cfg, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != filepath.ToSlash(dir) {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), dir)
	}
}

func TestCacheClear(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "entry.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := writeConfig(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n")
	if _, err := run(t, "--config", cfg, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cache dir still has %d entries", len(entries))
	}
}

func TestFetchThenRenderOffline(t *testing.T) {
	isolate(t)
	server := githubServer(t)
	cfg := writeConfig(t, `
[cache]
backend = "none"

[github]
api_url = "`+server.URL+`"
`)
	dir := t.TempDir()
	record := filepath.Join(dir, "record.yaml")

	if _, err := run(t, "--config", cfg, "fetch", "JasonLovesDoggo/gitsocial", "-o", record); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	rec, err := recordio.Import(record)
	if err != nil {
		t.Fatal(err)
	}
	if rec.StarCount != 1234 || len(rec.Contributors) != 1 {
		t.Fatalf("record = %+v", rec)
	}

	out := filepath.Join(dir, "cards")
	if _, err := run(t, "--config", cfg, "render", "--from", record, "-s", "classic,minimal", "--theme", "latte", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"gitsocial-preview-classic.png", "gitsocial-preview-minimal.png"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil || cfg.Width != 1200 || cfg.Height != 600 {
			t.Errorf("%s: %+v, %v", name, cfg, err)
		}
	}
}

func TestFetchToStdout(t *testing.T) {
	isolate(t)
	server := githubServer(t)
	cfg := writeConfig(t, "[cache]\nbackend = \"none\"\n[github]\napi_url = \""+server.URL+"\"\n")
	out, err := run(t, "--config", cfg, "fetch", "https://github.com/JasonLovesDoggo/gitsocial", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	rec, err := recordio.Read(strings.NewReader(out), recordio.JSON)
	if err != nil {
		t.Fatalf("stdout is not a JSON record: %v\n%s", err, out)
	}
	if rec.FullName() != "JasonLovesDoggo/gitsocial" {
		t.Errorf("FullName = %q", rec.FullName())
	}
}

func TestRenderRejectsUnknownStyle(t *testing.T) {
	isolate(t)
	_, err := run(t, "render", "octocat/hello-world", "--style", "holographic", "--no-cache")
	if err == nil || !strings.Contains(err.Error(), "holographic") {
		t.Errorf("err = %v, want unknown style", err)
	}
}
