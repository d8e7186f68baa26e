package card

import "time"

// RepositoryRecord describes one repository's metadata, stats, topics, and
// contributors. Zero values mean "absent".
type RepositoryRecord struct {
	Name           string        `json:"name" yaml:"name"`
	OwnerLogin     string        `json:"owner" yaml:"owner"`
	Description    string        `json:"description,omitempty" yaml:"description,omitempty"`
	Language       string        `json:"language,omitempty" yaml:"language,omitempty"`
	License        string        `json:"license,omitempty" yaml:"license,omitempty"`
	StarCount      int           `json:"stargazers_count" yaml:"stargazers_count"`
	ForkCount      int           `json:"forks_count" yaml:"forks_count"`
	OpenIssueCount int           `json:"open_issues_count" yaml:"open_issues_count"`
	Topics         []string      `json:"topics,omitempty" yaml:"topics,omitempty"`
	Contributors   []Contributor `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	CreatedAt      *time.Time    `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	PushedAt       *time.Time    `json:"pushed_at,omitempty" yaml:"pushed_at,omitempty"`
}

// Contributor is one entry of a repository's contributor list.
type Contributor struct {
	Login     string `json:"login" yaml:"login"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
}

// FullName returns "owner/name", or just the name when the owner is absent.
func (r RepositoryRecord) FullName() string {
	if r.OwnerLogin == "" {
		return r.Name
	}
	return r.OwnerLogin + "/" + r.Name
}
