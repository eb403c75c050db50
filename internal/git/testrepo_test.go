package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testRepo builds throwaway go-git repositories for reader tests.
type testRepo struct {
	t    *testing.T
	path string
	repo *gogit.Repository
	when time.Time
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	path := t.TempDir()
	repo, err := gogit.PlainInit(path, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}

	return &testRepo{
		t:    t,
		path: path,
		repo: repo,
		when: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

// commit writes the given files (path -> content, empty content deletes the
// file), stages everything, and commits. Each commit advances the clock by
// an hour so history ordering is deterministic.
func (r *testRepo) commit(message string, author AuthorInfo, files map[string]string) {
	r.t.Helper()

	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("worktree: %v", err)
	}

	for name, content := range files {
		full := filepath.Join(r.path, name)
		if content == "" {
			if err := os.Remove(full); err != nil {
				r.t.Fatalf("remove %s: %v", name, err)
			}
			if _, err := wt.Remove(name); err != nil {
				r.t.Fatalf("stage removal %s: %v", name, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			r.t.Fatalf("mkdir for %s: %v", name, err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			r.t.Fatalf("write %s: %v", name, err)
		}
		if _, err := wt.Add(name); err != nil {
			r.t.Fatalf("stage %s: %v", name, err)
		}
	}

	r.when = r.when.Add(time.Hour)
	_, err = wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  author.Name,
			Email: author.Email,
			When:  r.when,
		},
		Committer: &object.Signature{
			Name:  author.Name,
			Email: author.Email,
			When:  r.when,
		},
	})
	if err != nil {
		r.t.Fatalf("commit %q: %v", message, err)
	}
}

var testAuthor = AuthorInfo{Name: "Test Author", Email: "test@example.com"}
