package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jasonlovesdoggo/gitsocial/pkg/cache"
	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/integrations"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// contributorsPerPage is one more than the avatar cap so bots can be dropped
// without leaving a gap.
const contributorsPerPage = 6

// Client fetches repository records from GitHub.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client caching into c. An empty token makes
// unauthenticated requests.
func NewClient(c cache.Cache, token string, ttl time.Duration) *Client {
	headers := map[string]string{
		"Accept":               "application/vnd.github+json",
		"X-GitHub-Api-Version": "2022-11-28",
	}
	ic := integrations.NewClient(c, "github", ttl, headers)
	if token != "" {
		headers["Authorization"] = "Bearer " + token
		ic.SetKeyer(cache.NewScopedKeyer(nil, "token:"+cache.Hash([]byte(token))[:12]+":"))
	}
	return &Client{Client: ic, baseURL: DefaultBaseURL}
}

// WithBaseURL points the client at another API root, such as a GitHub
// Enterprise server or a test server.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimSuffix(u, "/")
	return c
}

// FetchRecord returns the card record for owner/repo. With refresh the cache
// is bypassed.
func (c *Client) FetchRecord(ctx context.Context, owner, repo string, refresh bool) (card.RepositoryRecord, error) {
	key := "record:" + strings.ToLower(owner+"/"+repo)

	var rec card.RepositoryRecord
	err := c.Cached(ctx, key, refresh, &rec, func() error {
		return c.fetchRecord(ctx, owner, repo, &rec)
	})
	if err != nil {
		return card.RepositoryRecord{}, classify(err, owner, repo)
	}
	return rec, nil
}

func (c *Client) fetchRecord(ctx context.Context, owner, repo string, rec *card.RepositoryRecord) error {
	data, err := c.fetchRepo(ctx, owner, repo)
	if err != nil {
		return err
	}

	*rec = card.RepositoryRecord{
		Name:           data.Name,
		OwnerLogin:     data.Owner.Login,
		Description:    data.Description,
		Language:       data.Language,
		StarCount:      data.Stars,
		ForkCount:      data.Forks,
		OpenIssueCount: data.OpenIssues,
		Topics:         data.Topics,
		CreatedAt:      data.CreatedAt,
		PushedAt:       data.PushedAt,
	}
	if data.License != nil && data.License.SPDXID != "NOASSERTION" {
		rec.License = data.License.SPDXID
	}

	// Empty repositories answer 204 here; a card without contributors is
	// still a valid card.
	contribs, err := c.fetchContributors(ctx, owner, repo)
	switch {
	case err == nil:
		rec.Contributors = contribs
	case errors.Is(err, integrations.ErrRateLimited), ctx.Err() != nil:
		return err
	}
	return nil
}

func (c *Client) fetchRepo(ctx context.Context, owner, repo string) (*repoResponse, error) {
	var data repoResponse
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) fetchContributors(ctx context.Context, owner, repo string) ([]card.Contributor, error) {
	var data []contributorResponse
	url := fmt.Sprintf("%s/repos/%s/%s/contributors?per_page=%d", c.baseURL, owner, repo, contributorsPerPage)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, err
	}

	var out []card.Contributor
	for _, cr := range data {
		if cr.Type == "Bot" || strings.HasSuffix(cr.Login, "[bot]") {
			continue
		}
		out = append(out, card.Contributor{Login: cr.Login, AvatarURL: cr.AvatarURL})
	}
	return out, nil
}

// classify maps transport errors onto coded errors.
func classify(err error, owner, repo string) error {
	var rl *integrations.RateLimitError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, integrations.ErrNotFound):
		return errs.Wrap(errs.ErrCodeNotFound, err, "repository %s/%s not found", owner, repo)
	case errors.As(err, &rl):
		msg := "GitHub API rate limit exceeded; set GITHUB_TOKEN to raise it"
		if d := rl.RetryAfter(); d > 0 {
			msg += fmt.Sprintf(" (resets in %s)", d.Round(time.Minute))
		}
		return errs.Wrap(errs.ErrCodeRateLimited, err, "%s", msg)
	default:
		return errs.Wrap(errs.ErrCodeNetwork, err, "fetch %s/%s", owner, repo)
	}
}
