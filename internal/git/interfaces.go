package git

import "context"

// RepositoryReader defines the interface for reading Git repository history.
// This abstraction allows for easier testing and alternative implementations.
type RepositoryReader interface {
	// ReadChanges reads the commit history within the configured window and
	// returns one CommitChangeSet per commit, newest first (git log order).
	ReadChanges(ctx context.Context) ([]CommitChangeSet, error)
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*HistoryReader)(nil)
