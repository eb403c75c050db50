package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HistoryReader reads commit history from a Git repository.
//
// The repository is opened with go-git up front so an invalid path fails
// fast, but history is read through the git CLI by default: combined
// --raw/--numstat parsing is considerably faster than walking patches with
// go-git, and matches what the original reports were generated from.
type HistoryReader struct {
	repo *gogit.Repository
	opts ReadOptions
}

// NewHistoryReader creates a new history reader for the given repository.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", opts.RepoPath, err)
	}
	return &HistoryReader{repo: repo, opts: opts}, nil
}

// Options returns the reader configuration.
func (r *HistoryReader) Options() ReadOptions {
	return r.opts
}

// SetProgressFunc installs a callback invoked after each processed commit.
func (r *HistoryReader) SetProgressFunc(fn func(processed int)) {
	r.opts.OnProgress = fn
}

// ReadChanges reads commit changes from the repository, newest first.
//
// Merge commits are excluded, so per-author commit counts derived from the
// result can be lower than `git shortlog -sne` on merge-heavy histories.
// Counting a merge would double-count its file changes in reconciliation.
func (r *HistoryReader) ReadChanges(ctx context.Context) ([]CommitChangeSet, error) {
	switch r.opts.Backend {
	case BackendCLI:
		return r.readChangesGitCLI(ctx)
	case BackendGoGit:
		return r.readChangesGoGit(ctx)
	default:
		if gitBinaryAvailable() {
			return r.readChangesGitCLI(ctx)
		}
		return r.readChangesGoGit(ctx)
	}
}

// CountCommits returns the number of commits in the configured window.
// Used for progress reporting; falls back to 0 on any failure.
func (r *HistoryReader) CountCommits(ctx context.Context) int {
	args := []string{"-C", r.opts.RepoPath, "rev-list", "--count", "--no-merges"}
	if r.opts.Since != nil {
		args = append(args, fmt.Sprintf("--since=@%d", r.opts.Since.Unix()))
	}
	if r.opts.Until != nil {
		args = append(args, fmt.Sprintf("--until=@%d", r.opts.Until.Unix()))
	}
	args = append(args, r.revision())

	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		return 0
	}
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%d", &n); err != nil {
		return 0
	}
	return n
}

func (r *HistoryReader) revision() string {
	rev := strings.TrimSpace(r.opts.Branch)
	if rev == "" {
		return "HEAD"
	}
	return rev
}

func gitBinaryAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// readChangesGoGit walks history with go-git. Slower than the CLI path but
// has no external dependency; used when no git binary is on PATH.
func (r *HistoryReader) readChangesGoGit(ctx context.Context) ([]CommitChangeSet, error) {
	var from plumbing.Hash
	if rev := r.revision(); strings.EqualFold(rev, "HEAD") {
		ref, err := r.repo.Head()
		if err != nil {
			return nil, fmt.Errorf("resolve HEAD: %w", err)
		}
		from = ref.Hash()
	} else {
		h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
		if err != nil {
			return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
		}
		from = *h
	}

	logOpts := &gogit.LogOptions{From: from}
	if r.opts.Since != nil {
		logOpts.Since = r.opts.Since
	}
	if r.opts.Until != nil {
		logOpts.Until = r.opts.Until
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	var results []CommitChangeSet
	processed := 0

	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Skip merge commits and the initial commit, consistent with the
		// CLI reader (git diff-tree emits nothing for either).
		if c.NumParents() != 1 {
			return nil
		}

		changes, err := r.commitChanges(c)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}

		message := c.Message
		if idx := strings.IndexByte(message, '\n'); idx != -1 {
			message = message[:idx]
		}

		results = append(results, CommitChangeSet{
			Commit: CommitInfo{
				SHA:     c.Hash.String(),
				When:    c.Committer.When,
				Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
				Message: strings.TrimSpace(message),
			},
			Changes: changes,
		})

		processed++
		if r.opts.OnProgress != nil {
			r.opts.OnProgress(processed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// commitChanges extracts file changes from a commit against its first parent.
func (r *HistoryReader) commitChanges(c *object.Commit) ([]FileChange, error) {
	parent, err := c.Parent(0)
	if err != nil {
		return nil, err
	}

	patch, err := parent.Patch(c)
	if err != nil {
		return nil, err
	}

	var changes []FileChange

	for _, filePatch := range patch.FilePatches() {
		from, to := filePatch.Files()

		var path, oldPath string
		var kind ChangeKind

		switch {
		case from == nil && to != nil:
			path = to.Path()
			kind = ChangeKindAdded
		case from != nil && to == nil:
			path = from.Path()
			kind = ChangeKindDeleted
		case from != nil && to != nil && from.Path() != to.Path():
			path = to.Path()
			oldPath = from.Path()
			kind = ChangeKindRenamed
		default:
			if to != nil {
				path = to.Path()
			} else if from != nil {
				path = from.Path()
			}
			kind = ChangeKindModified
		}

		if path == "" {
			continue
		}
		if !r.matchesFilters(path) {
			continue
		}

		var added, deleted int
		if r.opts.DetailLevel == ChangeDetailFull {
			for _, chunk := range filePatch.Chunks() {
				lines := strings.Count(chunk.Content(), "\n")
				switch chunk.Type() {
				case 1: // Add
					added += lines
				case 2: // Delete
					deleted += lines
				}
			}
		}

		changes = append(changes, FileChange{
			Path:         path,
			OldPath:      oldPath,
			LinesAdded:   added,
			LinesDeleted: deleted,
			Kind:         kind,
		})
	}

	return changes, nil
}

// matchesFilters checks if a path matches the include/exclude filters.
func (r *HistoryReader) matchesFilters(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range r.opts.Exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	if len(r.opts.Include) == 0 {
		return true
	}
	for _, pattern := range r.opts.Include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}
