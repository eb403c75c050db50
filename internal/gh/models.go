package gh

import "time"

// Actor is the author object the GitHub CLI emits for issues and PRs.
type Actor struct {
	Login string `json:"login"`
}

// DisplayLogin returns the login or "Unknown" when the author is missing
// (deleted accounts come back as null).
func (a Actor) DisplayLogin() string {
	if a.Login == "" {
		return "Unknown"
	}
	return a.Login
}

// Issue is one issue as reported by `gh issue list --json`.
type Issue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Author    Actor     `json:"author"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ClosedAt  time.Time `json:"closedAt"`
}

// PullRequest is one pull request as reported by `gh pr list --json`.
type PullRequest struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Author    Actor     `json:"author"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	MergedAt  time.Time `json:"mergedAt"`
	ClosedAt  time.Time `json:"closedAt"`
}

// IssueActivity groups issue lists for a reporting window.
type IssueActivity struct {
	Created []Issue `json:"created"`
	Updated []Issue `json:"updated"`
	Closed  []Issue `json:"closed"`
}

// PullRequestActivity groups pull request lists for a reporting window.
type PullRequestActivity struct {
	Created        []PullRequest `json:"created"`
	Updated        []PullRequest `json:"updated"`
	Merged         []PullRequest `json:"merged"`
	ClosedUnmerged []PullRequest `json:"closedUnmerged"`
}
