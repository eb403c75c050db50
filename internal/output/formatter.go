package output

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/ajkingio/git-report-gen/internal/aggregation"
	"github.com/ajkingio/git-report-gen/internal/gh"
	"github.com/ajkingio/git-report-gen/internal/git"
	"github.com/ajkingio/git-report-gen/internal/reconcile"
	"github.com/ajkingio/git-report-gen/internal/window"
)

// Compile-time interface conformance checks.
var (
	// ActivityReportWriter implementations
	_ ActivityReportWriter = (*ConsoleActivityWriter)(nil)
	_ ActivityReportWriter = (*MarkdownActivityWriter)(nil)
	_ ActivityReportWriter = (*JSONActivityWriter)(nil)

	// GitHubReportWriter implementations
	_ GitHubReportWriter = (*ConsoleGitHubWriter)(nil)
	_ GitHubReportWriter = (*MarkdownGitHubWriter)(nil)
	_ GitHubReportWriter = (*JSONGitHubWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format       OutputFormat
	OutputPath   string // empty means stdout
	IncludeDiffs bool
}

// ActivityReport holds everything the commit activity report renders.
type ActivityReport struct {
	RepoPath    string
	RepoName    string
	RepoURL     string // browsable GitHub URL, empty when unknown
	Window      window.Window
	GeneratedAt time.Time
	FileChanges reconcile.Summary
	Authors     []aggregation.AuthorActivity
	Diffs       []git.FileDiffGroup
}

// HasCommits reports whether any commits fell inside the window.
func (r *ActivityReport) HasCommits() bool {
	return aggregation.TotalCommits(r.Authors) > 0
}

// GitHubReport holds the hosting activity summary.
type GitHubReport struct {
	RepoPath     string
	RepoName     string
	RepoURL      string
	Window       window.Window
	GeneratedAt  time.Time
	Issues       gh.IssueActivity
	PullRequests gh.PullRequestActivity
}

// ActivityReportWriter writes commit activity reports.
type ActivityReportWriter interface {
	Write(report *ActivityReport, options OutputOptions) error
}

// GitHubReportWriter writes hosting activity summaries.
type GitHubReportWriter interface {
	Write(report *GitHubReport, options OutputOptions) error
}

// NewActivityReportWriter creates a report writer for the specified format.
func NewActivityReportWriter(format OutputFormat) ActivityReportWriter {
	switch format {
	case FormatMarkdown:
		return &MarkdownActivityWriter{}
	case FormatJSON:
		return &JSONActivityWriter{}
	default:
		return &ConsoleActivityWriter{}
	}
}

// NewGitHubReportWriter creates a summary writer for the specified format.
func NewGitHubReportWriter(format OutputFormat) GitHubReportWriter {
	switch format {
	case FormatMarkdown:
		return &MarkdownGitHubWriter{}
	case FormatJSON:
		return &JSONGitHubWriter{}
	default:
		return &ConsoleGitHubWriter{}
	}
}

func createWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, err
		}
		return file, file, nil
	}
	return os.Stdout, nil, nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
