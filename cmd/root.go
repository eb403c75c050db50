package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ajkingio/git-report-gen/config"
	"github.com/ajkingio/git-report-gen/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "git-report-gen",
		Usage:   "Generate Git and GitHub activity reports",
		Version: "1.0.0",
		Commands: []*cli.Command{
			ReportCmd(),
			GitHubCmd(),
			GenerateCmd(),
		},
		// The root action takes the generate flags so the historical
		// `git-report-gen <repo> --time-range 2.weeks` form keeps working.
		Flags:     generateFlags(),
		ArgsUsage: "[repository path]",
		Action:    legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "time-range",
			Aliases: []string{"t"},
			Usage:   "Time period for the report, e.g. 1.week, 3.months",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Report on commits since this date (YYYY-MM-DD, overrides --time-range)",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "Report on commits until this date (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to report on",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, markdown, json)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
	}
}

// parseDateFlag parses a date string flag.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "markdown", "md":
		return output.FormatMarkdown
	case "json":
		return output.FormatJSON
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if format := c.String("format"); format != "" {
		cfg.Output.Format = format
	}
	if branch := c.String("branch"); branch != "" {
		cfg.History.Branch = branch
	}

	return cfg, nil
}

// legacyAction keeps the original invocation working: a bare repository path
// argument generates both reports into the output directory.
func legacyAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return runGenerate(c, c.Args().Get(0))
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
