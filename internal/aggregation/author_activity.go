package aggregation

import (
	"sort"

	"github.com/ajkingio/git-report-gen/internal/git"
)

// AuthorActivity holds the commits one author made within the window.
type AuthorActivity struct {
	Author      git.AuthorInfo
	CommitCount int
	Commits     []git.CommitInfo // newest first, as read
}

// AuthorAggregator groups commit change sets by author.
// Contributors are keyed by lowercased email, so the same person committing
// under different display names collapses into one row.
type AuthorAggregator struct {
	activity map[string]*AuthorActivity
}

// NewAuthorAggregator creates a new aggregator.
func NewAuthorAggregator() *AuthorAggregator {
	return &AuthorAggregator{
		activity: make(map[string]*AuthorActivity),
	}
}

// Process folds all change sets into per-author activity and returns the
// sorted result: commit count descending, ties by author name then email for
// stable output.
func (a *AuthorAggregator) Process(changeSets []git.CommitChangeSet) []AuthorActivity {
	for _, cs := range changeSets {
		a.add(cs.Commit)
	}
	return a.Sorted()
}

func (a *AuthorAggregator) add(commit git.CommitInfo) {
	key := commit.Author.ContributorKey()
	entry, ok := a.activity[key]
	if !ok {
		entry = &AuthorActivity{Author: commit.Author}
		a.activity[key] = entry
	}
	entry.CommitCount++
	entry.Commits = append(entry.Commits, commit)
}

// Sorted returns the aggregated activity in presentation order.
func (a *AuthorAggregator) Sorted() []AuthorActivity {
	result := make([]AuthorActivity, 0, len(a.activity))
	for _, entry := range a.activity {
		result = append(result, *entry)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CommitCount != result[j].CommitCount {
			return result[i].CommitCount > result[j].CommitCount
		}
		if result[i].Author.Name != result[j].Author.Name {
			return result[i].Author.Name < result[j].Author.Name
		}
		return result[i].Author.Email < result[j].Author.Email
	})

	return result
}

// TotalCommits returns the number of commits across all authors.
func TotalCommits(activity []AuthorActivity) int {
	total := 0
	for _, a := range activity {
		total += a.CommitCount
	}
	return total
}
