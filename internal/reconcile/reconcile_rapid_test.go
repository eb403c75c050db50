package reconcile

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/ajkingio/git-report-gen/internal/git"
)

// --- Generators ---

func genEvent() *rapid.Generator[event] {
	return rapid.Custom(func(t *rapid.T) event {
		return event{
			kind: git.ChangeKind(rapid.IntRange(0, 2).Draw(t, "kind")),
			path: fmt.Sprintf("file%d.go", rapid.IntRange(0, 20).Draw(t, "id")),
		}
	})
}

func genEvents() *rapid.Generator[[]event] {
	return rapid.SliceOfN(genEvent(), 0, 200)
}

// --- Property Tests ---

func TestRapidReconciler_SumBoundedByDistinctPaths(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		events := genEvents().Draw(t, "events")

		distinct := make(map[string]struct{})
		for _, e := range events {
			distinct[e.path] = struct{}{}
		}

		summary := applyAll(events)

		if summary.Total() > len(distinct) {
			t.Fatalf("total %d exceeds %d distinct paths", summary.Total(), len(distinct))
		}
		if summary.Added < 0 || summary.Modified < 0 || summary.Deleted < 0 {
			t.Fatalf("negative count in %+v", summary)
		}
	})
}

func TestRapidReconciler_SetsMutuallyExclusive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		events := genEvents().Draw(t, "events")

		r := New()
		for _, e := range events {
			r.Apply(e.kind, e.path)

			// The invariant must hold after every event, not just at the end.
			for path := range r.added {
				if _, ok := r.modified[path]; ok {
					t.Fatalf("%q in both added and modified", path)
				}
				if _, ok := r.deleted[path]; ok {
					t.Fatalf("%q in both added and deleted", path)
				}
			}
			for path := range r.modified {
				if _, ok := r.deleted[path]; ok {
					t.Fatalf("%q in both modified and deleted", path)
				}
			}
		}
	})
}

func TestRapidReconciler_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		events := genEvents().Draw(t, "events")

		first := applyAll(events)
		second := applyAll(events)

		if first != second {
			t.Fatalf("re-run produced %+v, first run produced %+v", second, first)
		}
	})
}

func TestRapidReconciler_SinglePathEndsInOneState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kinds := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 50).Draw(t, "kinds")

		r := New()
		for _, k := range kinds {
			r.Apply(git.ChangeKind(k), "only.go")
		}

		if total := r.Summary().Total(); total > 1 {
			t.Fatalf("single path counted %d times", total)
		}
	})
}
