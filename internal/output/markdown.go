package output

import (
	"fmt"
	"io"

	"github.com/ajkingio/git-report-gen/internal/gh"
)

// MarkdownActivityWriter renders the commit activity report as Markdown.
type MarkdownActivityWriter struct{}

// Write outputs the activity report as Markdown.
func (w *MarkdownActivityWriter) Write(report *ActivityReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintf(out, "# Git Commit Report for %s\n", report.RepoName)
	fmt.Fprintf(out, "*Generated on %s*\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "**Period:** %s\n\n", report.Window.Description())

	if !report.HasCommits() {
		fmt.Fprintln(out, "No commits found in the specified period.")
		return nil
	}

	// Net file changes first; this is the headline number.
	fmt.Fprintln(out, "## File Changes")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "- **Files Added:** %d\n", report.FileChanges.Added)
	fmt.Fprintf(out, "- **Files Modified:** %d\n", report.FileChanges.Modified)
	fmt.Fprintf(out, "- **Files Deleted:** %d\n", report.FileChanges.Deleted)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Commit Summary")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "| Commits | Author |")
	fmt.Fprintln(out, "|---------|--------|")
	for _, author := range report.Authors {
		fmt.Fprintf(out, "| %d | %s |\n", author.CommitCount, escapeMarkdown(author.Author.String()))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Commits by Author")
	fmt.Fprintln(out)
	for _, author := range report.Authors {
		fmt.Fprintf(out, "### %s\n\n", author.Author.String())
		for _, commit := range author.Commits {
			link := commit.ShortSHA()
			if report.RepoURL != "" {
				link = fmt.Sprintf("[%s](%s/commit/%s)", commit.ShortSHA(), report.RepoURL, commit.SHA)
			}
			fmt.Fprintf(out, "- [%s] %s *(%s)*\n",
				link, escapeMarkdown(commit.Message), commit.When.Format("2006-01-02"))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "---")
		fmt.Fprintln(out)
	}

	if options.IncludeDiffs {
		writeDiffSection(out, report)
	}

	return nil
}

func writeDiffSection(out io.Writer, report *ActivityReport) {
	fmt.Fprintln(out, "## File Diffs")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "All changes to files in the specified period:")
	fmt.Fprintln(out)

	if len(report.Diffs) == 0 {
		fmt.Fprintln(out, "No file changes found in the specified period.")
		fmt.Fprintln(out)
		return
	}

	for _, group := range report.Diffs {
		fmt.Fprintf(out, "### %s\n\n", group.Path)
		for _, diff := range group.Diffs {
			fmt.Fprintf(out, "**Commit:** %s - %s (%s)\n\n",
				diff.Commit.ShortSHA(), diff.Commit.Message, diff.Commit.When.Format("2006-01-02"))
			fmt.Fprintln(out, "```diff")
			fmt.Fprintln(out, diff.Patch)
			fmt.Fprintln(out, "```")
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, "---")
		fmt.Fprintln(out)
	}
}

// MarkdownGitHubWriter renders the hosting activity summary as Markdown.
type MarkdownGitHubWriter struct{}

// Write outputs the GitHub summary as Markdown.
func (w *MarkdownGitHubWriter) Write(report *GitHubReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintf(out, "# GitHub Activity Summary for %s\n", report.RepoName)
	fmt.Fprintf(out, "*Generated on %s*\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "**Period:** %s\n\n", report.Window.Description())

	fmt.Fprintln(out, "## Issues Summary")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "- **Issues Created:** %d\n", len(report.Issues.Created))
	fmt.Fprintf(out, "- **Issues Updated:** %d\n", len(report.Issues.Updated))
	fmt.Fprintf(out, "- **Issues Closed:** %d\n", len(report.Issues.Closed))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Pull Requests Summary")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "- **PRs Created:** %d\n", len(report.PullRequests.Created))
	fmt.Fprintf(out, "- **PRs Updated:** %d\n", len(report.PullRequests.Updated))
	fmt.Fprintf(out, "- **PRs Merged:** %d\n", len(report.PullRequests.Merged))
	fmt.Fprintf(out, "- **PRs Closed (not merged):** %d\n", len(report.PullRequests.ClosedUnmerged))
	fmt.Fprintln(out)

	w.writeIssueList(out, report, "Issues Created", report.Issues.Created)
	w.writeIssueList(out, report, "Issues Closed", report.Issues.Closed)
	w.writePRList(out, report, "Pull Requests Created", report.PullRequests.Created)
	w.writePRList(out, report, "Pull Requests Merged", report.PullRequests.Merged)
	w.writePRList(out, report, "Pull Requests Closed (not merged)", report.PullRequests.ClosedUnmerged)

	return nil
}

func (w *MarkdownGitHubWriter) writeIssueList(out io.Writer, report *GitHubReport, heading string, issues []gh.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(out, "## %s\n\n", heading)
	for _, issue := range issues {
		ref := fmt.Sprintf("#%d", issue.Number)
		if report.RepoURL != "" {
			ref = fmt.Sprintf("[#%d](%s/issues/%d)", issue.Number, report.RepoURL, issue.Number)
		}
		fmt.Fprintf(out, "- %s: %s (by @%s)\n", ref, escapeMarkdown(issue.Title), issue.Author.DisplayLogin())
	}
	fmt.Fprintln(out)
}

func (w *MarkdownGitHubWriter) writePRList(out io.Writer, report *GitHubReport, heading string, prs []gh.PullRequest) {
	if len(prs) == 0 {
		return
	}
	fmt.Fprintf(out, "## %s\n\n", heading)
	for _, pr := range prs {
		ref := fmt.Sprintf("#%d", pr.Number)
		if report.RepoURL != "" {
			ref = fmt.Sprintf("[#%d](%s/pull/%d)", pr.Number, report.RepoURL, pr.Number)
		}
		fmt.Fprintf(out, "- %s: %s (by @%s)\n", ref, escapeMarkdown(pr.Title), pr.Author.DisplayLogin())
	}
	fmt.Fprintln(out)
}
