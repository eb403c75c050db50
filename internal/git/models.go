package git

import (
	"strings"
	"time"
)

// CommitInfo holds the commit metadata the reports need.
type CommitInfo struct {
	SHA     string
	When    time.Time
	Author  AuthorInfo
	Message string // first line only
}

// ShortSHA returns the abbreviated commit hash used in report links.
func (c CommitInfo) ShortSHA() string {
	if len(c.SHA) < 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// AuthorInfo identifies a commit author.
type AuthorInfo struct {
	Name  string
	Email string
}

// ContributorKey returns a normalized identifier for grouping contributors.
func (a AuthorInfo) ContributorKey() string {
	return strings.ToLower(a.Email)
}

// String renders the author in the conventional "Name <email>" form.
func (a AuthorInfo) String() string {
	return a.Name + " <" + a.Email + ">"
}

// FileChange represents a single file change within a commit.
type FileChange struct {
	Path         string
	OldPath      string // For renames
	LinesAdded   int
	LinesDeleted int
	Kind         ChangeKind
}

// Churn returns total lines changed (added + deleted).
func (f FileChange) Churn() int {
	return f.LinesAdded + f.LinesDeleted
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
	ChangeKindRenamed
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindModified:
		return "modified"
	case ChangeKindDeleted:
		return "deleted"
	case ChangeKindRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// CommitChangeSet bundles a commit with its file changes.
type CommitChangeSet struct {
	Commit  CommitInfo
	Changes []FileChange
}

// ChangeDetail controls how much per-file information the reader collects.
type ChangeDetail int

const (
	// ChangeDetailPathsOnly collects paths and change kinds.
	ChangeDetailPathsOnly ChangeDetail = iota
	// ChangeDetailFull additionally collects per-file line counts.
	ChangeDetailFull
)

// RenameDetectMode controls how file renames are detected.
type RenameDetectMode int

const (
	RenameDetectOff RenameDetectMode = iota
	RenameDetectSimple
	RenameDetectAggressive
)

// Backend selects the history reading implementation.
type Backend int

const (
	// BackendAuto uses the git CLI when available, go-git otherwise.
	BackendAuto Backend = iota
	BackendCLI
	BackendGoGit
)

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath     string
	Branch       string
	Since        *time.Time
	Until        *time.Time
	Include      []string // Glob patterns to include
	Exclude      []string // Glob patterns to exclude
	DetailLevel  ChangeDetail
	RenameDetect RenameDetectMode
	Backend      Backend
	OnProgress   func(processed int)
}
