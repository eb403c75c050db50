package output

import (
	"testing"
	"time"
)

var reportDate = time.Date(2025, 7, 10, 14, 30, 0, 0, time.UTC)

func TestActivityReportFilename(t *testing.T) {
	got := ActivityReportFilename(reportDate, "demo", "2weeks")
	want := "20250710_demo_2weeks_commit_report.md"
	if got != want {
		t.Errorf("ActivityReportFilename() = %q, expected %q", got, want)
	}
}

func TestGitHubSummaryFilename(t *testing.T) {
	got := GitHubSummaryFilename(reportDate, "demo", "1week")
	want := "20250710_demo_1week_github_summary.md"
	if got != want {
		t.Errorf("GitHubSummaryFilename() = %q, expected %q", got, want)
	}
}

func TestRepoName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/work/projects/demo", want: "demo"},
		{path: "demo", want: "demo"},
		{path: "/work/projects/demo/", want: "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := RepoName(tt.path); got != tt.want {
				t.Errorf("RepoName(%q) = %q, expected %q", tt.path, got, tt.want)
			}
		})
	}
}
