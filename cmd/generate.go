package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/ajkingio/git-report-gen/internal/gh"
	"github.com/ajkingio/git-report-gen/internal/git"
	"github.com/ajkingio/git-report-gen/internal/output"
)

// generateFlags is the flag set for writing report files. Shared with the
// root command so the original bare-path invocation keeps working.
func generateFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"d"},
			Usage:   "Directory to write reports into",
		},
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"report-type"},
			Usage:   "Which reports to generate (all, commits, github)",
			Value:   "all",
		},
		&cli.BoolFlag{
			Name:  "no-diffs",
			Usage: "Omit the per-file diff section",
		},
	)
}

// GenerateCmd creates the command that writes both markdown reports into the
// output directory with date-stamped file names.
func GenerateCmd() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate commit and GitHub reports as markdown files",
		Flags:   generateFlags(),
		Action: func(c *cli.Context) error {
			return runGenerate(c, "")
		},
	}
}

func runGenerate(c *cli.Context, repoPath string) error {
	reportType := c.String("type")
	if reportType == "" {
		reportType = "all"
	}
	switch reportType {
	case "all", "commits", "github":
	default:
		return fmt.Errorf("unknown report type %q (expected all, commits, or github)", reportType)
	}

	cmdCtx, err := NewCommandContext(c, repoPath)
	if err != nil {
		return err
	}

	outputDir := c.String("output-dir")
	if outputDir == "" {
		outputDir = cmdCtx.Config.Output.Dir
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory %q: %w", outputDir, err)
	}

	now := time.Now()
	token := cmdCtx.Window.FilenameToken()

	if reportType == "all" || reportType == "commits" {
		path := filepath.Join(outputDir,
			output.ActivityReportFilename(now, cmdCtx.RepoName, token))
		if err := writeCommitReport(c, cmdCtx, path); err != nil {
			return err
		}
		color.Green("✓ Commit report generated: %s", path)
	}

	if reportType == "all" || reportType == "github" {
		if err := generateGitHubSummary(c, cmdCtx, outputDir, now, token, reportType == "github"); err != nil {
			return err
		}
	}

	return nil
}

func writeCommitReport(c *cli.Context, cmdCtx *CommandContext, path string) error {
	withDiffs := !c.Bool("no-diffs") && cmdCtx.Config.Output.IncludeDiffs
	report := buildActivityReport(c, cmdCtx, withDiffs)
	writer := output.NewActivityReportWriter(output.FormatMarkdown)
	return writer.Write(report, output.OutputOptions{
		Format:       output.FormatMarkdown,
		OutputPath:   path,
		IncludeDiffs: withDiffs,
	})
}

// generateGitHubSummary writes the GitHub summary when the repository
// qualifies. When the summary runs as part of "all", a non-GitHub remote or
// missing gh CLI just skips the summary with a note; requested explicitly,
// those are errors.
func generateGitHubSummary(c *cli.Context, cmdCtx *CommandContext, outputDir string, now time.Time, token string, explicit bool) error {
	skip := func(reason string) error {
		if explicit {
			return fmt.Errorf("%s", reason)
		}
		color.Yellow("⚠ Skipping GitHub summary: %s", reason)
		return nil
	}

	if !cmdCtx.Config.GitHub.Enabled {
		return skip("disabled in configuration")
	}
	if !gh.Installed() {
		return skip("gh CLI not found on PATH")
	}

	remoteURL, err := git.OriginURL(cmdCtx.RepoPath)
	if err != nil {
		return err
	}
	if !git.IsGitHubRemote(remoteURL) {
		return skip(fmt.Sprintf("repository %q has no GitHub origin remote", cmdCtx.RepoPath))
	}

	client := gh.NewClient(cmdCtx.RepoPath, cmdCtx.Config.GitHub.Limit)
	ctx := c.Context

	issues, err := client.IssueActivity(ctx, cmdCtx.Window.SinceDate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some issue queries failed: %v\n", err)
	}
	prs, err := client.PullRequestActivity(ctx, cmdCtx.Window.SinceDate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some pull request queries failed: %v\n", err)
	}

	report := &output.GitHubReport{
		RepoPath:     cmdCtx.RepoPath,
		RepoName:     cmdCtx.RepoName,
		RepoURL:      cmdCtx.RepoURL,
		Window:       cmdCtx.Window,
		GeneratedAt:  now,
		Issues:       issues,
		PullRequests: prs,
	}

	path := filepath.Join(outputDir,
		output.GitHubSummaryFilename(now, cmdCtx.RepoName, token))
	writer := output.NewGitHubReportWriter(output.FormatMarkdown)
	if err := writer.Write(report, output.OutputOptions{
		Format:     output.FormatMarkdown,
		OutputPath: path,
	}); err != nil {
		return err
	}

	color.Green("✓ GitHub summary generated: %s", path)
	return nil
}
