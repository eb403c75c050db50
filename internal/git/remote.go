package git

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

const githubHost = "github.com"

// OriginURL returns the URL of the repository's "origin" remote, or an empty
// string if the remote is not configured.
func OriginURL(repoPath string) (string, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return "", fmt.Errorf("open repository %q: %w", repoPath, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		// No origin remote configured; not an error for reporting purposes.
		return "", nil
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

// IsGitHubRemote reports whether a remote URL points at github.com.
func IsGitHubRemote(remoteURL string) bool {
	return strings.Contains(remoteURL, githubHost)
}

// GitHubURL normalizes a GitHub remote URL into a browsable HTTPS URL,
// e.g. "git@github.com:owner/repo.git" -> "https://github.com/owner/repo".
// Returns an empty string for non-GitHub remotes.
func GitHubURL(remoteURL string) string {
	remoteURL = strings.TrimSpace(remoteURL)
	if remoteURL == "" || !IsGitHubRemote(remoteURL) {
		return ""
	}

	if rest, ok := strings.CutPrefix(remoteURL, "git@"+githubHost+":"); ok {
		return "https://" + githubHost + "/" + strings.TrimSuffix(rest, ".git")
	}
	if rest, ok := strings.CutPrefix(remoteURL, "ssh://git@"+githubHost+"/"); ok {
		return "https://" + githubHost + "/" + strings.TrimSuffix(rest, ".git")
	}

	return strings.TrimSuffix(remoteURL, ".git")
}
