// Package urlutil provides URL parsing utilities.
package urlutil

import (
	"net/url"
	"strings"
)

// RepoFromURL extracts owner and repository from a GitHub web or API URL such
// as https://github.com/owner/repo, https://github.com/owner/repo/pulls or
// https://api.github.com/repos/owner/repo. ok is false when s is not a URL or
// does not name a repository.
func RepoFromURL(s string) (owner, repo string, ok bool) {
	if !strings.Contains(s, "://") {
		return "", "", false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	// API URLs: /repos/owner/repo/...
	if len(parts) > 0 && parts[0] == "repos" {
		parts = parts[1:]
	}
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
