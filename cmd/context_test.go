package cmd

import (
	"flag"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ajkingio/git-report-gen/config"
)

func testContext(t *testing.T, args map[string]string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("time-range", "", "")
	set.String("since", "", "")
	set.String("until", "", "")
	for name, value := range args {
		if err := set.Set(name, value); err != nil {
			t.Fatalf("set flag %s: %v", name, err)
		}
	}
	return cli.NewContext(App(), set, nil)
}

func TestResolveWindow_ConfigDefault(t *testing.T) {
	cfg := config.DefaultConfig()

	w, err := resolveWindow(testContext(t, nil), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Spec != "1.week" {
		t.Errorf("Spec = %q, expected %q", w.Spec, "1.week")
	}
	gotDays := int(w.Until.Sub(w.Since).Hours() / 24)
	if gotDays != 7 {
		t.Errorf("window spans %d days, expected 7", gotDays)
	}
}

func TestResolveWindow_TimeRangeFlag(t *testing.T) {
	cfg := config.DefaultConfig()

	w, err := resolveWindow(testContext(t, map[string]string{"time-range": "2.weeks"}), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Spec != "2.weeks" {
		t.Errorf("Spec = %q, expected %q", w.Spec, "2.weeks")
	}
}

func TestResolveWindow_SinceOverrides(t *testing.T) {
	cfg := config.DefaultConfig()

	w, err := resolveWindow(testContext(t, map[string]string{
		"time-range": "1.month",
		"since":      "2025-07-01",
		"until":      "2025-07-15",
	}), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Spec != "2025-07-01" {
		t.Errorf("Spec = %q, expected the since date", w.Spec)
	}
	if !w.Since.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Since = %v, expected 2025-07-01", w.Since)
	}
	if !w.Until.Equal(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Until = %v, expected 2025-07-15", w.Until)
	}
}

func TestResolveWindow_InvalidDate(t *testing.T) {
	cfg := config.DefaultConfig()

	if _, err := resolveWindow(testContext(t, map[string]string{"since": "bad"}), cfg); err == nil {
		t.Fatal("expected error for invalid date, got nil")
	}
}
