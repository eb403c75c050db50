package aggregation

import (
	"testing"
	"time"

	"github.com/ajkingio/git-report-gen/internal/git"
)

func changeSet(sha, name, email, message string, when time.Time) git.CommitChangeSet {
	return git.CommitChangeSet{
		Commit: git.CommitInfo{
			SHA:     sha,
			When:    when,
			Author:  git.AuthorInfo{Name: name, Email: email},
			Message: message,
		},
		Changes: []git.FileChange{{Path: "main.go", Kind: git.ChangeKindModified}},
	}
}

func TestAuthorAggregator_Process(t *testing.T) {
	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	changeSets := []git.CommitChangeSet{
		changeSet("c4", "Alice", "alice@example.com", "Fix parser", base.Add(3*time.Hour)),
		changeSet("c3", "Bob", "bob@example.com", "Add flag", base.Add(2*time.Hour)),
		changeSet("c2", "Alice", "ALICE@example.com", "Refactor reader", base.Add(time.Hour)),
		changeSet("c1", "Alice", "alice@example.com", "Initial layout", base),
	}

	result := NewAuthorAggregator().Process(changeSets)

	if len(result) != 2 {
		t.Fatalf("got %d authors, expected 2", len(result))
	}

	// Alice first: 3 commits, case-insensitive email grouping.
	if result[0].Author.Email != "alice@example.com" {
		t.Errorf("top author = %q, expected alice", result[0].Author.Email)
	}
	if result[0].CommitCount != 3 {
		t.Errorf("top CommitCount = %d, expected 3", result[0].CommitCount)
	}
	if len(result[0].Commits) != 3 {
		t.Errorf("top Commits = %d entries, expected 3", len(result[0].Commits))
	}
	// Order of arrival preserved (newest first).
	if result[0].Commits[0].SHA != "c4" {
		t.Errorf("first commit = %q, expected c4", result[0].Commits[0].SHA)
	}

	if result[1].CommitCount != 1 {
		t.Errorf("second CommitCount = %d, expected 1", result[1].CommitCount)
	}
}

func TestAuthorAggregator_TieBreaksByName(t *testing.T) {
	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	result := NewAuthorAggregator().Process([]git.CommitChangeSet{
		changeSet("c2", "Zoe", "zoe@example.com", "B", base.Add(time.Hour)),
		changeSet("c1", "Adam", "adam@example.com", "A", base),
	})

	if len(result) != 2 {
		t.Fatalf("got %d authors, expected 2", len(result))
	}
	if result[0].Author.Name != "Adam" || result[1].Author.Name != "Zoe" {
		t.Errorf("tie order = [%s, %s], expected [Adam, Zoe]",
			result[0].Author.Name, result[1].Author.Name)
	}
}

func TestAuthorAggregator_Empty(t *testing.T) {
	result := NewAuthorAggregator().Process(nil)
	if len(result) != 0 {
		t.Errorf("got %d authors, expected 0", len(result))
	}
}

func TestTotalCommits(t *testing.T) {
	activity := []AuthorActivity{
		{CommitCount: 3},
		{CommitCount: 2},
	}
	if got := TotalCommits(activity); got != 5 {
		t.Errorf("TotalCommits() = %d, expected 5", got)
	}
	if got := TotalCommits(nil); got != 0 {
		t.Errorf("TotalCommits(nil) = %d, expected 0", got)
	}
}
