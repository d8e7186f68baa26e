package recordio

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
)

func sample() card.RepositoryRecord {
	created := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	return card.RepositoryRecord{
		Name:           "gitsocial",
		OwnerLogin:     "JasonLovesDoggo",
		Description:    "A GitHub card generator",
		Language:       "TypeScript",
		StarCount:      42,
		ForkCount:      3,
		OpenIssueCount: 1,
		Topics:         []string{"nextjs", "canvas"},
		Contributors:   []card.Contributor{{Login: "alice", AvatarURL: "https://avatars.example/alice"}},
		CreatedAt:      &created,
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"record.json", JSON, true},
		{"dir/record.YAML", YAML, true},
		{"record.yml", YAML, true},
		{"record.toml", "", false},
		{"record", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("FormatFromPath(%q) error code = %s", tt.path, errs.GetCode(err))
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": JSON, " YAML ": YAML, "yml": YAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestReadPartialYAML(t *testing.T) {
	in := `
name: tiny
owner: someone
stargazers_count: 7
`
	rec, err := Read(strings.NewReader(in), YAML)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rec.Name != "tiny" || rec.OwnerLogin != "someone" || rec.StarCount != 7 {
		t.Errorf("rec = %+v", rec)
	}
	if rec.Description != "" || rec.CreatedAt != nil || rec.Contributors != nil {
		t.Errorf("absent fields should stay zero: %+v", rec)
	}
}

func TestReadJSONGitHubNames(t *testing.T) {
	in := `{"name":"x","owner":"o","forks_count":12,"open_issues_count":4,"pushed_at":"2024-03-01T10:00:00Z"}`
	rec, err := Read(strings.NewReader(in), JSON)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rec.ForkCount != 12 || rec.OpenIssueCount != 4 {
		t.Errorf("counts = %d, %d", rec.ForkCount, rec.OpenIssueCount)
	}
	if rec.PushedAt == nil || rec.PushedAt.Year() != 2024 {
		t.Errorf("PushedAt = %v", rec.PushedAt)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		f    Format
	}{
		{"empty json", "", JSON},
		{"empty yaml", "", YAML},
		{"malformed json", "{", JSON},
		{"wrong type", `{"stargazers_count":"many"}`, JSON},
		{"unknown format", "{}", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in), tt.f)
			if !errs.Is(err, errs.ErrCodeInvalidFormat) {
				t.Errorf("err = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestExportImport(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "record"+ext)
			want := sample()
			if err := Export(want, path); err != nil {
				t.Fatalf("Export: %v", err)
			}
			got, err := Import(path)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if got.CreatedAt == nil || !got.CreatedAt.Equal(*want.CreatedAt) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
			}
			got.CreatedAt, want.CreatedAt = nil, nil
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Import = %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "nope.json"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Fatalf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestImportMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("name: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Import(path)
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Fatalf("err = %v, want INVALID_FORMAT", err)
	}
	if !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestWriteYAMLUsesGitHubNames(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), YAML); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"stargazers_count: 42", "owner: JasonLovesDoggo", "avatar_url:"} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("output missing %q:\n%s", key, buf.String())
		}
	}
}
