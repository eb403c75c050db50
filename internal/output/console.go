package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleActivityWriter writes the commit activity report to the console.
type ConsoleActivityWriter struct{}

// Write outputs the activity report to the console.
func (w *ConsoleActivityWriter) Write(report *ActivityReport, options OutputOptions) error {
	color.Green("Git Commit Report for %s", report.RepoName)
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Period: %s\n\n", report.Window.Description())

	if !report.HasCommits() {
		fmt.Println("No commits found in the specified period.")
		return nil
	}

	colorTitle := color.New(color.FgGreen).Add(color.Underline)

	colorTitle.Println("File Changes:")
	fmt.Printf("  Added: %d  Modified: %d  Deleted: %d\n\n",
		report.FileChanges.Added, report.FileChanges.Modified, report.FileChanges.Deleted)

	colorTitle.Println("Commit Summary:")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Commits\tAuthor")
	for _, author := range report.Authors {
		fmt.Fprintf(tw, "%d\t%s\n", author.CommitCount, author.Author.String())
	}
	tw.Flush()
	fmt.Println()

	colorTitle.Println("Commits by Author:")
	for _, author := range report.Authors {
		fmt.Printf("  %s\n", author.Author.String())
		for _, commit := range author.Commits {
			fmt.Printf("    %s  %s  (%s)\n",
				commit.ShortSHA(), commit.Message, commit.When.Format("2006-01-02"))
		}
	}

	// Diffs are a file-report feature; the console stays scannable.
	return nil
}

// ConsoleGitHubWriter writes the hosting activity summary to the console.
type ConsoleGitHubWriter struct{}

// Write outputs the GitHub summary to the console.
func (w *ConsoleGitHubWriter) Write(report *GitHubReport, options OutputOptions) error {
	color.Green("GitHub Activity Summary for %s", report.RepoName)
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Period: %s\n\n", report.Window.Description())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Issues Created\t", len(report.Issues.Created))
	fmt.Fprintln(tw, "Issues Updated\t", len(report.Issues.Updated))
	fmt.Fprintln(tw, "Issues Closed\t", len(report.Issues.Closed))
	fmt.Fprintln(tw, "PRs Created\t", len(report.PullRequests.Created))
	fmt.Fprintln(tw, "PRs Updated\t", len(report.PullRequests.Updated))
	fmt.Fprintln(tw, "PRs Merged\t", len(report.PullRequests.Merged))
	fmt.Fprintln(tw, "PRs Closed (not merged)\t", len(report.PullRequests.ClosedUnmerged))
	tw.Flush()

	if len(report.PullRequests.Merged) > 0 {
		fmt.Println()
		colorTitle := color.New(color.FgGreen).Add(color.Underline)
		colorTitle.Println("Merged Pull Requests:")
		for _, pr := range report.PullRequests.Merged {
			fmt.Printf("  #%d  %s  (@%s)\n", pr.Number, pr.Title, pr.Author.DisplayLogin())
		}
	}

	return nil
}
