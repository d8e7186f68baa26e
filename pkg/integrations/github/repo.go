package github

import (
	"errors"
	"regexp"
	"strings"

	git "github.com/go-git/go-git/v5"

	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/integrations"
)

var repoURLPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?github\.com/([^/]+)/([^/?#]+?)(?:\.git)?(?:[/?#].*)?$`)

// ParseRepoRef extracts owner and repository name from "owner/repo" or a
// GitHub URL (https, ssh, git@ or git://). Both parts are validated.
func ParseRepoRef(ref string) (owner, repo string, err error) {
	s := integrations.NormalizeRepoURL(ref)
	if m := repoURLPattern.FindStringSubmatch(s); m != nil {
		owner, repo = m[1], m[2]
	} else if strings.Contains(s, "://") {
		return "", "", errs.New(errs.ErrCodeInvalidRepo, "%q is not a GitHub repository URL", ref)
	} else {
		parts := strings.Split(strings.Trim(s, "/"), "/")
		if len(parts) != 2 {
			return "", "", errs.New(errs.ErrCodeInvalidRepo, "invalid repository %q: use owner/repo", ref)
		}
		owner, repo = parts[0], parts[1]
	}

	if err := errs.ValidateOwner(owner); err != nil {
		return "", "", err
	}
	if err := errs.ValidateRepoName(repo); err != nil {
		return "", "", err
	}
	return owner, repo, nil
}

// DetectRemote returns owner and repository of the "origin" remote of the
// git checkout containing dir.
func DetectRemote(dir string) (owner, repo string, err error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", "", errs.Wrap(errs.ErrCodeInvalidInput, err, "%s is not inside a git repository; pass owner/repo", dir)
		}
		return "", "", errs.Wrap(errs.ErrCodeInvalidInput, err, "open git repository")
	}

	remote, err := r.Remote("origin")
	if err != nil {
		return "", "", errs.Wrap(errs.ErrCodeInvalidInput, err, "no origin remote; pass owner/repo")
	}
	for _, u := range remote.Config().URLs {
		if owner, repo, err = ParseRepoRef(u); err == nil {
			return owner, repo, nil
		}
	}
	return "", "", errs.New(errs.ErrCodeInvalidRepo, "origin remote does not point at GitHub")
}
