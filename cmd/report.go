package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ajkingio/git-report-gen/internal/aggregation"
	"github.com/ajkingio/git-report-gen/internal/git"
	"github.com/ajkingio/git-report-gen/internal/output"
	"github.com/ajkingio/git-report-gen/internal/reconcile"
)

// ReportCmd creates the commit activity report command.
func ReportCmd() *cli.Command {
	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Generate a commit activity report",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.BoolFlag{
				Name:  "no-diffs",
				Usage: "Omit the per-file diff section",
			},
		),
		Action: func(c *cli.Context) error {
			cmdCtx, err := NewCommandContext(c, "")
			if err != nil {
				return err
			}

			withDiffs := includeDiffs(c, cmdCtx)
			report := buildActivityReport(c, cmdCtx, withDiffs)

			format := getOutputFormat(cmdCtx.Config.Output.Format)
			writer := output.NewActivityReportWriter(format)
			return writer.Write(report, output.OutputOptions{
				Format:       format,
				OutputPath:   c.String("output"),
				IncludeDiffs: withDiffs,
			})
		},
	}
}

// buildActivityReport assembles the activity report from read history.
// Diffs are collected only when they will be rendered; a diff collection
// failure degrades to a report without the diff section.
func buildActivityReport(c *cli.Context, cmdCtx *CommandContext, withDiffs bool) *output.ActivityReport {
	aggregator := aggregation.NewAuthorAggregator()

	report := &output.ActivityReport{
		RepoPath:    cmdCtx.RepoPath,
		RepoName:    cmdCtx.RepoName,
		RepoURL:     cmdCtx.RepoURL,
		Window:      cmdCtx.Window,
		GeneratedAt: time.Now(),
		FileChanges: reconcile.ReconcileHistory(cmdCtx.ChangeSets),
		Authors:     aggregator.Process(cmdCtx.ChangeSets),
	}

	if withDiffs && report.HasCommits() {
		diffs, err := git.CollectFileDiffs(c.Context, cmdCtx.RepoPath, cmdCtx.ChangeSets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not collect file diffs: %v\n", err)
		} else {
			report.Diffs = diffs
		}
	}

	return report
}

// includeDiffs reports whether the diff section should be rendered. Diffs
// only appear in markdown output; console and JSON skip them.
func includeDiffs(c *cli.Context, cmdCtx *CommandContext) bool {
	if c.Bool("no-diffs") {
		return false
	}
	if getOutputFormat(cmdCtx.Config.Output.Format) != output.FormatMarkdown {
		return false
	}
	return cmdCtx.Config.Output.IncludeDiffs
}
