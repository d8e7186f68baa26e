package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"

	"github.com/jasonlovesdoggo/gitsocial/pkg/cache"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
)

func testClient(t *testing.T, serverURL, token string) *Client {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewClient(c, token, time.Hour).WithBaseURL(serverURL)
}

func repoServer(t *testing.T, repoHits *atomic.Int32) *httptest.Server {
	t.Helper()
	created := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/repos/JasonLovesDoggo/gitsocial":
			if repoHits != nil {
				repoHits.Add(1)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"name":              "gitsocial",
				"description":       "A GitHub card generator",
				"owner":             map[string]string{"login": "JasonLovesDoggo"},
				"language":          "TypeScript",
				"stargazers_count":  42,
				"forks_count":       3,
				"open_issues_count": 1,
				"topics":            []string{"nextjs", "canvas"},
				"created_at":        created,
				"license":           map[string]string{"spdx_id": "MIT"},
			})
		case "/repos/JasonLovesDoggo/gitsocial/contributors":
			if got := r.URL.Query().Get("per_page"); got != "6" {
				t.Errorf("per_page = %q, want 6", got)
			}
			json.NewEncoder(w).Encode([]contributorResponse{
				{Login: "JasonLovesDoggo", AvatarURL: "https://avatars.example.com/1", Type: "User"},
				{Login: "dependabot[bot]", AvatarURL: "https://avatars.example.com/2", Type: "Bot"},
				{Login: "friend", AvatarURL: "https://avatars.example.com/3", Type: "User"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestFetchRecord(t *testing.T) {
	server := repoServer(t, nil)
	defer server.Close()

	rec, err := testClient(t, server.URL, "").FetchRecord(context.Background(), "JasonLovesDoggo", "gitsocial", false)
	if err != nil {
		t.Fatalf("FetchRecord: %v", err)
	}

	if rec.FullName() != "JasonLovesDoggo/gitsocial" {
		t.Errorf("FullName = %q", rec.FullName())
	}
	if rec.StarCount != 42 || rec.ForkCount != 3 || rec.OpenIssueCount != 1 {
		t.Errorf("stats = %d/%d/%d, want 42/3/1", rec.StarCount, rec.ForkCount, rec.OpenIssueCount)
	}
	if rec.Language != "TypeScript" || rec.License != "MIT" {
		t.Errorf("language/license = %q/%q", rec.Language, rec.License)
	}
	if rec.CreatedAt == nil || rec.CreatedAt.Year() != 2024 {
		t.Errorf("CreatedAt = %v", rec.CreatedAt)
	}
	if rec.PushedAt != nil {
		t.Errorf("PushedAt = %v, want nil", rec.PushedAt)
	}
	if len(rec.Contributors) != 2 {
		t.Fatalf("got %d contributors, want 2 (bot skipped)", len(rec.Contributors))
	}
	if rec.Contributors[1].Login != "friend" || rec.Contributors[1].AvatarURL != "https://avatars.example.com/3" {
		t.Errorf("second contributor = %+v", rec.Contributors[1])
	}
}

func TestFetchRecordCached(t *testing.T) {
	var hits atomic.Int32
	server := repoServer(t, &hits)
	defer server.Close()

	c := testClient(t, server.URL, "")
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := c.FetchRecord(ctx, "JasonLovesDoggo", "gitsocial", false); err != nil {
			t.Fatal(err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("repo endpoint hit %d times, want 1", hits.Load())
	}

	if _, err := c.FetchRecord(ctx, "JasonLovesDoggo", "gitsocial", true); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 2 {
		t.Errorf("refresh should bypass the cache; hits = %d", hits.Load())
	}
}

func TestFetchRecordNotFound(t *testing.T) {
	server := repoServer(t, nil)
	defer server.Close()

	_, err := testClient(t, server.URL, "").FetchRecord(context.Background(), "nobody", "nothing", false)
	if !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestFetchRecordRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL, "").FetchRecord(context.Background(), "a", "b", false)
	if !errs.Is(err, errs.ErrCodeRateLimited) {
		t.Errorf("err = %v, want RATE_LIMITED", err)
	}
}

func TestTokenHeader(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, _ = testClient(t, server.URL, "secret").FetchRecord(context.Background(), "a", "b", false)
	if auth != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", auth)
	}
}

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		ref       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"JasonLovesDoggo/gitsocial", "JasonLovesDoggo", "gitsocial", false},
		{"https://github.com/JasonLovesDoggo/gitsocial", "JasonLovesDoggo", "gitsocial", false},
		{"https://github.com/golang/go/tree/master/src", "golang", "go", false},
		{"github.com/golang/go", "golang", "go", false},
		{"git@github.com:foo/bar.git", "foo", "bar", false},
		{"ssh://git@github.com/foo/bar.js.git", "foo", "bar.js", false},
		{"https://gitlab.com/foo/bar", "", "", true},
		{"just-a-name", "", "", true},
		{"a/b/c", "", "", true},
		{"-bad/repo", "", "", true},
		{"owner/..", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			owner, repo, err := ParseRepoRef(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("got %s/%s, want %s/%s", owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestDetectRemote(t *testing.T) {
	dir := t.TempDir()
	r, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := DetectRemote(dir); err == nil {
		t.Error("expected error without an origin remote")
	}

	_, err = r.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:JasonLovesDoggo/gitsocial.git"},
	})
	if err != nil {
		t.Fatal(err)
	}
	owner, repo, err := DetectRemote(dir)
	if err != nil {
		t.Fatalf("DetectRemote: %v", err)
	}
	if owner != "JasonLovesDoggo" || repo != "gitsocial" {
		t.Errorf("got %s/%s", owner, repo)
	}
}

func TestDetectRemoteNotARepo(t *testing.T) {
	_, _, err := DetectRemote(t.TempDir())
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}
