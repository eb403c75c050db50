// Package reconcile computes the net effect of a sequence of per-commit file
// changes: how many distinct files ended the window added, modified, or
// deleted, rather than how many change events occurred.
package reconcile

import (
	"github.com/ajkingio/git-report-gen/internal/git"
)

// Summary holds the net file-change counts for a window.
type Summary struct {
	Added    int `json:"added"`
	Modified int `json:"modified"`
	Deleted  int `json:"deleted"`
}

// Total returns the number of files that ended the window in any set.
func (s Summary) Total() int {
	return s.Added + s.Modified + s.Deleted
}

// Reconciler folds file-change events into three mutually exclusive path
// sets. Events must be applied in chronological order (oldest first); the
// result is order-dependent, not commutative.
//
// State machine per event, for path P:
//
//	Added:    if P is marked deleted, the add is suppressed (see below).
//	          Otherwise P moves to the added set, leaving modified.
//	Deleted:  if P is marked added, the pair cancels out (net zero).
//	          Otherwise P moves to the deleted set. Either way P leaves
//	          modified.
//	Modified: P joins the modified set only if it is in neither other set.
//	Renamed:  expanded to Deleted(old path) followed by Added(new path).
//
// The suppress-on-re-add rule means a file deleted and later re-created
// within the window counts as neither added nor deleted. That matches the
// tool's historical output and is kept deliberately so numbers stay
// comparable across report runs.
type Reconciler struct {
	added    map[string]struct{}
	modified map[string]struct{}
	deleted  map[string]struct{}
}

// New returns an empty Reconciler.
func New() *Reconciler {
	return &Reconciler{
		added:    make(map[string]struct{}),
		modified: make(map[string]struct{}),
		deleted:  make(map[string]struct{}),
	}
}

// Apply folds one file-change event into the state. Events with an empty
// path or an unknown change kind are ignored.
func (r *Reconciler) Apply(kind git.ChangeKind, path string) {
	if path == "" {
		return
	}

	switch kind {
	case git.ChangeKindAdded:
		if _, wasDeleted := r.deleted[path]; wasDeleted {
			return
		}
		r.added[path] = struct{}{}
		delete(r.modified, path)

	case git.ChangeKindDeleted:
		if _, wasAdded := r.added[path]; wasAdded {
			delete(r.added, path)
		} else {
			r.deleted[path] = struct{}{}
		}
		delete(r.modified, path)

	case git.ChangeKindModified:
		if _, inAdded := r.added[path]; inAdded {
			return
		}
		if _, inDeleted := r.deleted[path]; inDeleted {
			return
		}
		r.modified[path] = struct{}{}
	}
}

// ApplyChange folds a FileChange into the state, expanding renames into a
// delete of the old path followed by an add of the new one.
func (r *Reconciler) ApplyChange(change git.FileChange) {
	if change.Kind == git.ChangeKindRenamed {
		r.Apply(git.ChangeKindDeleted, change.OldPath)
		r.Apply(git.ChangeKindAdded, change.Path)
		return
	}
	r.Apply(change.Kind, change.Path)
}

// Summary returns the final counts. The state remains valid; Summary may be
// called at any point during a run.
func (r *Reconciler) Summary() Summary {
	return Summary{
		Added:    len(r.added),
		Modified: len(r.modified),
		Deleted:  len(r.deleted),
	}
}

// ReconcileHistory reconciles reader output, which arrives newest first
// (git log order), by walking it backwards so events are applied oldest
// first.
func ReconcileHistory(changeSets []git.CommitChangeSet) Summary {
	r := New()
	for i := len(changeSets) - 1; i >= 0; i-- {
		for _, change := range changeSets[i].Changes {
			r.ApplyChange(change)
		}
	}
	return r.Summary()
}
