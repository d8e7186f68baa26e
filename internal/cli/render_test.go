package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/palette"
	"github.com/jasonlovesdoggo/gitsocial/pkg/pipeline"
)

func testCLI(cfg Config) *CLI {
	c := New(os.Stderr, LogInfo)
	c.config = &cfg
	return c
}

func TestPipelineOptionsDefaults(t *testing.T) {
	popts, err := testCLI(Config{}).pipelineOptions([]string{"octocat/hello-world"}, renderOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if popts.Owner != "octocat" || popts.Repo != "hello-world" {
		t.Errorf("repo = %s/%s", popts.Owner, popts.Repo)
	}
	if popts.Theme != palette.Mocha {
		t.Errorf("Theme = %q, want mocha", popts.Theme)
	}
	if !reflect.DeepEqual(popts.Styles, card.Styles()) {
		t.Errorf("Styles = %v, want all", popts.Styles)
	}
	if popts.AvatarTimeout != pipeline.DefaultAvatarTimeout {
		t.Errorf("AvatarTimeout = %v", popts.AvatarTimeout)
	}
}

func TestPipelineOptionsFlagsOverrideConfig(t *testing.T) {
	cfg := Config{Theme: "latte", Styles: []string{"modern"}, Width: 1000, Height: 500}
	cfg.Render.AvatarTimeout.Duration = 2 * time.Second
	c := testCLI(cfg)

	popts, err := c.pipelineOptions([]string{"octocat/hello-world"}, renderOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if popts.Theme != palette.Latte || popts.Width != 1000 || popts.Height != 500 {
		t.Errorf("config not applied: %+v", popts)
	}
	if !reflect.DeepEqual(popts.Styles, []card.StyleID{card.StyleModern}) {
		t.Errorf("Styles = %v", popts.Styles)
	}
	if popts.AvatarTimeout != 2*time.Second {
		t.Errorf("AvatarTimeout = %v", popts.AvatarTimeout)
	}

	popts, err = c.pipelineOptions([]string{"octocat/hello-world"}, renderOpts{
		theme:  "Frappe",
		styles: []string{"classic", "compact"},
		width:  800,
	})
	if err != nil {
		t.Fatal(err)
	}
	if popts.Theme != palette.Frappe || popts.Width != 800 || popts.Height != 500 {
		t.Errorf("flags not applied: %+v", popts)
	}
	if !reflect.DeepEqual(popts.Styles, []card.StyleID{card.StyleClassic, card.StyleCompact}) {
		t.Errorf("Styles = %v", popts.Styles)
	}
}

func TestPipelineOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		opts renderOpts
		code errs.Code
	}{
		{"unknown theme", []string{"a/b"}, renderOpts{theme: "neon"}, errs.ErrCodeUnknownTheme},
		{"unknown style", []string{"a/b"}, renderOpts{styles: []string{"fancy"}}, errs.ErrCodeUnknownStyle},
		{"bad repo", []string{"not a repo"}, renderOpts{}, errs.ErrCodeInvalidRepo},
		{"repo and file", []string{"a/b"}, renderOpts{from: "r.json"}, errs.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testCLI(Config{}).pipelineOptions(tt.args, tt.opts)
			if !errs.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestPipelineOptionsFromFile(t *testing.T) {
	popts, err := testCLI(Config{}).pipelineOptions(nil, renderOpts{from: "record.yaml"})
	if err != nil {
		t.Fatal(err)
	}
	if popts.RecordPath != "record.yaml" || popts.Owner != "" {
		t.Errorf("popts = %+v", popts)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	result := &pipeline.Result{
		Record:    card.RepositoryRecord{Name: "gitsocial"},
		Requested: []card.StyleID{card.StyleModern, card.StyleClassic, card.StyleCompact},
		Artifacts: map[card.StyleID][]byte{
			card.StyleClassic: []byte("a"),
			card.StyleModern:  []byte("b"),
		},
	}
	paths, err := writeArtifacts(dir, result)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "gitsocial-preview-modern.png"), filepath.Join(dir, "gitsocial-preview-classic.png")}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
	if data, _ := os.ReadFile(want[1]); string(data) != "a" {
		t.Errorf("classic contents = %q", data)
	}
}

func TestWriteArtifactsStaysInOutputDir(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"../escaped", "_escaped-preview-classic.png"},
		{"..", "card-preview-classic.png"},
		{"a/b\\c", "a_b_c-preview-classic.png"},
		{"/etc/passwd", "_etc_passwd-preview-classic.png"},
		{"", "card-preview-classic.png"},
		{"my.repo_v2", "my.repo_v2-preview-classic.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			dir := filepath.Join(root, "out")
			if err := os.Mkdir(dir, 0o755); err != nil {
				t.Fatal(err)
			}
			result := &pipeline.Result{
				Record:    card.RepositoryRecord{Name: tt.name},
				Requested: []card.StyleID{card.StyleClassic},
				Artifacts: map[card.StyleID][]byte{card.StyleClassic: []byte("png")},
			}
			paths, err := writeArtifacts(dir, result)
			if err != nil {
				t.Fatal(err)
			}
			if len(paths) != 1 || paths[0] != filepath.Join(dir, tt.want) {
				t.Fatalf("paths = %v, want %s", paths, filepath.Join(dir, tt.want))
			}
			entries, err := os.ReadDir(root)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 || entries[0].Name() != "out" {
				t.Errorf("files written beside the output dir: %v", entries)
			}
		})
	}
}

func TestThemeListModel(t *testing.T) {
	m := NewThemeListModel(palette.Frappe)
	if m.Themes[m.Cursor] != palette.Frappe {
		t.Fatalf("cursor on %s, want frappe", m.Themes[m.Cursor])
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	next, _ := m.Update(down)
	m = next.(ThemeListModel)
	if m.Themes[m.Cursor] != palette.Macchiato {
		t.Errorf("after down: %s", m.Themes[m.Cursor])
	}
	for range 5 {
		next, _ = m.Update(down)
		m = next.(ThemeListModel)
	}
	if m.Cursor != len(m.Themes)-1 {
		t.Errorf("cursor should stop at the last theme, got %d", m.Cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ThemeListModel)
	if m.Selected != palette.Mocha || cmd == nil {
		t.Errorf("Selected = %q, cmd = %v", m.Selected, cmd)
	}
	if v := m.View(); v == "" {
		t.Error("View should render")
	}
}

func TestThemeListModelQuit(t *testing.T) {
	m := NewThemeListModel(palette.Latte)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if next.(ThemeListModel).Selected != "" || cmd == nil {
		t.Error("q should quit without a selection")
	}
}
