// Package github fetches repository records from the GitHub REST API.
//
// # Usage
//
//	client := github.NewClient(fileCache, token, 24*time.Hour)
//	rec, err := client.FetchRecord(ctx, "JasonLovesDoggo", "gitsocial", false)
//
// [Client.FetchRecord] combines /repos/{owner}/{repo} with the first page of
// /repos/{owner}/{repo}/contributors into a [card.RepositoryRecord]. Bot
// accounts are dropped from the contributor list.
//
// # Authentication
//
// A token is optional. Without one GitHub allows 60 requests per hour; with
// one, 5000. Responses fetched with a token are cached under a key scope
// derived from the token so they are never served to anonymous runs.
//
// # Repository references
//
// [ParseRepoRef] accepts "owner/repo" as well as https, ssh and git URLs.
// [DetectRemote] reads the origin remote of a local git checkout.
//
// [card.RepositoryRecord]: github.com/jasonlovesdoggo/gitsocial/pkg/card.RepositoryRecord
package github
