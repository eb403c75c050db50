package output

import (
	"encoding/json"

	"github.com/ajkingio/git-report-gen/internal/gh"
	"github.com/ajkingio/git-report-gen/internal/reconcile"
)

// JSONActivityWriter writes the commit activity report as JSON.
type JSONActivityWriter struct{}

// jsonActivityReport is the JSON output structure for the activity report.
type jsonActivityReport struct {
	Repo         string            `json:"repo"`
	RepoURL      string            `json:"repoUrl,omitempty"`
	Period       string            `json:"period"`
	Since        string            `json:"since"`
	Until        string            `json:"until"`
	GeneratedAt  string            `json:"generatedAt"`
	TotalCommits int               `json:"totalCommits"`
	FileChanges  reconcile.Summary `json:"fileChanges"`
	Authors      []jsonAuthor      `json:"authors"`
}

type jsonAuthor struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	CommitCount int          `json:"commitCount"`
	Commits     []jsonCommit `json:"commits"`
}

type jsonCommit struct {
	SHA     string `json:"sha"`
	When    string `json:"when"`
	Message string `json:"message"`
}

// Write outputs the activity report as indented JSON.
func (w *JSONActivityWriter) Write(report *ActivityReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	totalCommits := 0
	authors := make([]jsonAuthor, 0, len(report.Authors))
	for _, author := range report.Authors {
		commits := make([]jsonCommit, 0, len(author.Commits))
		for _, c := range author.Commits {
			commits = append(commits, jsonCommit{
				SHA:     c.SHA,
				When:    c.When.Format("2006-01-02T15:04:05Z07:00"),
				Message: c.Message,
			})
		}
		totalCommits += author.CommitCount
		authors = append(authors, jsonAuthor{
			Name:        author.Author.Name,
			Email:       author.Author.Email,
			CommitCount: author.CommitCount,
			Commits:     commits,
		})
	}

	doc := jsonActivityReport{
		Repo:         report.RepoPath,
		RepoURL:      report.RepoURL,
		Period:       report.Window.Description(),
		Since:        report.Window.Since.Format("2006-01-02"),
		Until:        report.Window.Until.Format("2006-01-02"),
		GeneratedAt:  report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		TotalCommits: totalCommits,
		FileChanges:  report.FileChanges,
		Authors:      authors,
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// JSONGitHubWriter writes the hosting activity summary as JSON.
type JSONGitHubWriter struct{}

// jsonGitHubReport is the JSON output structure for the GitHub summary.
type jsonGitHubReport struct {
	Repo         string                 `json:"repo"`
	RepoURL      string                 `json:"repoUrl,omitempty"`
	Period       string                 `json:"period"`
	Since        string                 `json:"since"`
	GeneratedAt  string                 `json:"generatedAt"`
	Issues       gh.IssueActivity       `json:"issues"`
	PullRequests gh.PullRequestActivity `json:"pullRequests"`
}

// Write outputs the GitHub summary as indented JSON.
func (w *JSONGitHubWriter) Write(report *GitHubReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	doc := jsonGitHubReport{
		Repo:         report.RepoPath,
		RepoURL:      report.RepoURL,
		Period:       report.Window.Description(),
		Since:        report.Window.SinceDate(),
		GeneratedAt:  report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Issues:       report.Issues,
		PullRequests: report.PullRequests,
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
