package git

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// FileDiff is one commit's patch for a single file.
type FileDiff struct {
	Commit CommitInfo
	Patch  string
}

// FileDiffGroup collects every patch touching one path within the window.
type FileDiffGroup struct {
	Path  string
	Diffs []FileDiff
}

// CollectFileDiffs fetches the per-file patches for every change in the
// given change sets, grouped by path and sorted by path. Within a group,
// patches appear in the order the change sets were supplied (newest first
// when coming straight from the reader).
//
// Requires the git binary; this is only called for the report's diff
// section, which degrades to an empty section on failure.
func CollectFileDiffs(ctx context.Context, repoPath string, changeSets []CommitChangeSet) ([]FileDiffGroup, error) {
	grouped := make(map[string][]FileDiff)

	for _, cs := range changeSets {
		for _, change := range cs.Changes {
			patch, err := showFilePatch(ctx, repoPath, cs.Commit.SHA, change.Path)
			if err != nil {
				return nil, err
			}
			if patch == "" {
				continue
			}
			grouped[change.Path] = append(grouped[change.Path], FileDiff{
				Commit: cs.Commit,
				Patch:  patch,
			})
		}
	}

	paths := make([]string, 0, len(grouped))
	for path := range grouped {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	groups := make([]FileDiffGroup, 0, len(paths))
	for _, path := range paths {
		groups = append(groups, FileDiffGroup{Path: path, Diffs: grouped[path]})
	}
	return groups, nil
}

func showFilePatch(ctx context.Context, repoPath, sha, path string) (string, error) {
	args := []string{
		"-C", repoPath,
		"show",
		"--no-color",
		"--format=",
		sha,
		"--", path,
	}

	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git show %s -- %s failed: %w: %s",
			sha, path, err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}
