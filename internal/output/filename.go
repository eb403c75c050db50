package output

import (
	"fmt"
	"path/filepath"
	"time"
)

// Report file names are date-stamped so repeated runs in the same output
// directory do not clobber older reports from other days:
// YYYYMMDD_<repo>_<window>_commit_report.md

// ActivityReportFilename returns the output file name for the commit report.
func ActivityReportFilename(date time.Time, repoName, windowToken string) string {
	return fmt.Sprintf("%s_%s_%s_commit_report.md", date.Format("20060102"), repoName, windowToken)
}

// GitHubSummaryFilename returns the output file name for the GitHub summary.
func GitHubSummaryFilename(date time.Time, repoName, windowToken string) string {
	return fmt.Sprintf("%s_%s_%s_github_summary.md", date.Format("20060102"), repoName, windowToken)
}

// RepoName derives the display name of a repository from its path.
func RepoName(repoPath string) string {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return filepath.Base(repoPath)
	}
	return filepath.Base(abs)
}
