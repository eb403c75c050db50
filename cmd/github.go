package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ajkingio/git-report-gen/config"
	"github.com/ajkingio/git-report-gen/internal/gh"
	"github.com/ajkingio/git-report-gen/internal/git"
	"github.com/ajkingio/git-report-gen/internal/output"
)

// GitHubCmd creates the GitHub activity summary command.
func GitHubCmd() *cli.Command {
	return &cli.Command{
		Name:    "github",
		Aliases: []string{"gh"},
		Usage:   "Generate a GitHub issue and pull request activity summary",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			repoPath := c.String("repo")

			report, err := buildGitHubReport(c, cfg, repoPath)
			if err != nil {
				return err
			}

			format := getOutputFormat(cfg.Output.Format)
			writer := output.NewGitHubReportWriter(format)
			return writer.Write(report, output.OutputOptions{
				Format:     format,
				OutputPath: c.String("output"),
			})
		},
	}
}

// buildGitHubReport queries gh for issue and PR activity. The repository
// must have a GitHub origin remote and the gh CLI must be installed; either
// missing is an error here, because the user asked for this report
// explicitly.
func buildGitHubReport(c *cli.Context, cfg *config.Config, repoPath string) (*output.GitHubReport, error) {
	if !gh.Installed() {
		return nil, fmt.Errorf("gh CLI not found on PATH; install it from https://cli.github.com")
	}

	remoteURL, err := git.OriginURL(repoPath)
	if err != nil {
		return nil, err
	}
	if !git.IsGitHubRemote(remoteURL) {
		return nil, fmt.Errorf("repository %q has no GitHub origin remote", repoPath)
	}

	w, err := resolveWindow(c, cfg)
	if err != nil {
		return nil, err
	}

	client := gh.NewClient(repoPath, cfg.GitHub.Limit)
	ctx := c.Context

	issues, err := client.IssueActivity(ctx, w.SinceDate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some issue queries failed: %v\n", err)
	}
	prs, err := client.PullRequestActivity(ctx, w.SinceDate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some pull request queries failed: %v\n", err)
	}

	return &output.GitHubReport{
		RepoPath:     repoPath,
		RepoName:     output.RepoName(repoPath),
		RepoURL:      git.GitHubURL(remoteURL),
		Window:       w,
		GeneratedAt:  time.Now(),
		Issues:       issues,
		PullRequests: prs,
	}, nil
}
