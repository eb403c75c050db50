package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/ajkingio/git-report-gen/config"
	"github.com/ajkingio/git-report-gen/internal/git"
	"github.com/ajkingio/git-report-gen/internal/output"
	"github.com/ajkingio/git-report-gen/internal/window"
)

// CommandContext carries everything a report command needs after the shared
// setup: resolved configuration, repository identity, the time window, and
// the commit history read from the repository.
type CommandContext struct {
	Config     *config.Config
	RepoPath   string
	RepoName   string
	RepoURL    string
	Window     window.Window
	ChangeSets []git.CommitChangeSet
}

// NewCommandContext loads configuration, resolves the time window, and reads
// commit history for the repository named by the CLI flags. repoPath
// overrides the --repo flag when non-empty (used by the positional-argument
// form).
func NewCommandContext(c *cli.Context, repoPath string) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	if repoPath == "" {
		repoPath = c.String("repo")
	}

	w, err := resolveWindow(c, cfg)
	if err != nil {
		return nil, err
	}

	reader, err := git.NewHistoryReader(git.ReadOptions{
		RepoPath: repoPath,
		Branch:   cfg.History.Branch,
		Since:    &w.Since,
		Until:    &w.Until,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
	})
	if err != nil {
		return nil, err
	}

	ctx := c.Context
	done := startProgress(ctx, reader)
	changeSets, err := reader.ReadChanges(ctx)
	done()
	if err != nil {
		return nil, fmt.Errorf("read commit history: %w", err)
	}

	repoURL, err := git.OriginURL(repoPath)
	if err != nil {
		repoURL = ""
	}

	return &CommandContext{
		Config:     cfg,
		RepoPath:   repoPath,
		RepoName:   output.RepoName(repoPath),
		RepoURL:    git.GitHubURL(repoURL),
		Window:     w,
		ChangeSets: changeSets,
	}, nil
}

// resolveWindow determines the reporting window from flags and config.
// --since/--until take precedence over --time-range, which takes precedence
// over the configured window. An unparsable time range falls back to the
// default with a warning rather than aborting, so a typo still produces a
// report.
func resolveWindow(c *cli.Context, cfg *config.Config) (window.Window, error) {
	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return window.Window{}, err
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return window.Window{}, err
	}

	spec := c.String("time-range")
	if spec == "" {
		spec = cfg.Window
	}

	w, err := window.Parse(spec, time.Now())
	if err != nil && since == nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using last 7 days\n", err)
	}

	if since != nil {
		w.Spec = since.Format("2006-01-02")
		w.Since = *since
	}
	if until != nil {
		w.Until = *until
	}
	return w, nil
}

// startProgress attaches a progress bar to the reader when stderr is a
// terminal. The returned func finishes the bar and must be called once
// reading is done.
func startProgress(ctx context.Context, reader *git.HistoryReader) func() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return func() {}
	}

	total := reader.CountCommits(ctx)
	if total <= 0 {
		return func() {}
	}

	bar := pb.New(total)
	bar.SetWriter(os.Stderr)
	bar.Start()

	reader.SetProgressFunc(func(processed int) {
		bar.SetCurrent(int64(processed))
	})

	return func() { bar.Finish() }
}
