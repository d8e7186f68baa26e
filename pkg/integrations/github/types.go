package github

import "time"

// repoResponse is the subset of GET /repos/{owner}/{repo} used for cards.
type repoResponse struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
	Language   string     `json:"language"`
	Stars      int        `json:"stargazers_count"`
	Forks      int        `json:"forks_count"`
	OpenIssues int        `json:"open_issues_count"`
	Topics     []string   `json:"topics"`
	CreatedAt  *time.Time `json:"created_at"`
	PushedAt   *time.Time `json:"pushed_at"`
	License    *struct {
		SPDXID string `json:"spdx_id"`
	} `json:"license"`
}

type contributorResponse struct {
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	Contributions int    `json:"contributions"`
	Type          string `json:"type"`
}
