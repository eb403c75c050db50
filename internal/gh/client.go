// Package gh queries GitHub issue and pull request activity through the
// external `gh` CLI. No direct API access happens here; authentication,
// pagination and rate limits are the CLI's problem.
package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Runner executes a gh invocation and returns its stdout.
// Abstracted so tests can inject canned CLI output.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// Compile-time interface conformance check.
var _ Runner = (*execRunner)(nil)

type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var stderr string
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(ee.Stderr))
		}
		return nil, fmt.Errorf("gh %s failed: %w: %s", strings.Join(args, " "), err, stderr)
	}
	return out, nil
}

// Installed reports whether the gh binary is on PATH.
func Installed() bool {
	_, err := exec.LookPath("gh")
	return err == nil
}

// Client lists repository activity via the gh CLI, run with the repository
// as its working directory so gh resolves the right remote.
type Client struct {
	runner  Runner
	repoDir string
	limit   int
}

// NewClient creates a client for the repository at repoDir. limit caps how
// many items each list query returns; zero means the default of 1000.
func NewClient(repoDir string, limit int) *Client {
	if limit <= 0 {
		limit = 1000
	}
	return &Client{runner: execRunner{}, repoDir: repoDir, limit: limit}
}

// NewClientWithRunner is NewClient with an injected Runner, for tests.
func NewClientWithRunner(runner Runner, repoDir string, limit int) *Client {
	c := NewClient(repoDir, limit)
	c.runner = runner
	return c
}

// IssueActivity returns issues created, updated, and closed since the given
// ISO date (YYYY-MM-DD). Each list degrades independently: a failed query
// leaves its list empty and the first error is returned alongside whatever
// was fetched.
func (c *Client) IssueActivity(ctx context.Context, sinceDate string) (IssueActivity, error) {
	var activity IssueActivity
	var firstErr error

	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	record(c.list(ctx, &activity.Created, "issue",
		"created:>="+sinceDate, "", "number,title,author,createdAt,state"))
	record(c.list(ctx, &activity.Updated, "issue",
		"updated:>="+sinceDate, "", "number,title,author,updatedAt,state"))
	record(c.list(ctx, &activity.Closed, "issue",
		"closed:>="+sinceDate, "closed", "number,title,author,closedAt,state"))

	return activity, firstErr
}

// PullRequestActivity returns pull requests created, updated, merged, and
// closed without merging since the given ISO date. Degrades the same way as
// IssueActivity.
func (c *Client) PullRequestActivity(ctx context.Context, sinceDate string) (PullRequestActivity, error) {
	var activity PullRequestActivity
	var firstErr error

	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	record(c.list(ctx, &activity.Created, "pr",
		"created:>="+sinceDate, "", "number,title,author,createdAt,state"))
	record(c.list(ctx, &activity.Updated, "pr",
		"updated:>="+sinceDate, "", "number,title,author,updatedAt,state"))
	record(c.list(ctx, &activity.Merged, "pr",
		"merged:>="+sinceDate, "merged", "number,title,author,mergedAt"))
	record(c.list(ctx, &activity.ClosedUnmerged, "pr",
		"closed:>="+sinceDate+" is:unmerged", "closed", "number,title,author,closedAt"))

	return activity, firstErr
}

// list runs one `gh <kind> list` query and decodes the JSON into out, which
// must be a pointer to a slice of Issue or PullRequest.
func (c *Client) list(ctx context.Context, out any, kind, search, state, fields string) error {
	args := []string{kind, "list", "--search", search}
	if state != "" {
		args = append(args, "--state", state)
	}
	args = append(args, "--json", fields, "--limit", strconv.Itoa(c.limit))

	raw, err := c.runner.Run(ctx, c.repoDir, args...)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode gh %s list output: %w", kind, err)
	}
	return nil
}
