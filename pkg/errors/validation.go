package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ownerRegex matches GitHub user and organization logins.
var ownerRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,37}[A-Za-z0-9])?$`)

// repoNameRegex matches GitHub repository names.
var repoNameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{1,100}$`)

// ValidateOwner validates a GitHub owner login.
func ValidateOwner(owner string) error {
	if owner == "" {
		return New(ErrCodeInvalidRepo, "repository owner cannot be empty")
	}
	if !ownerRegex.MatchString(owner) {
		return New(ErrCodeInvalidRepo, "invalid repository owner: %q", owner)
	}
	return nil
}

// ValidateRepoName validates a GitHub repository name.
// The names "." and ".." are rejected because the API treats them as paths.
func ValidateRepoName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRepo, "repository name cannot be empty")
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidRepo, "invalid repository name: %q", name)
	}
	if !repoNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRepo, "invalid repository name: %q", name)
	}
	return nil
}

// ValidatePath validates an output or input file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
