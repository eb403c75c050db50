package window

import (
	"testing"
	"time"
)

var now = time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC)

func TestParse_ValidSpecs(t *testing.T) {
	tests := []struct {
		spec string
		days int
	}{
		{spec: "1.day", days: 1},
		{spec: "5.days", days: 5},
		{spec: "1.week", days: 7},
		{spec: "2.weeks", days: 14},
		{spec: "1.month", days: 30},
		{spec: "3.months", days: 90},
		{spec: "1.year", days: 365},
		{spec: "2.Years", days: 730},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			w, err := Parse(tt.spec, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := now.AddDate(0, 0, -tt.days)
			if !w.Since.Equal(want) {
				t.Errorf("Since = %v, expected %v", w.Since, want)
			}
			if !w.Until.Equal(now) {
				t.Errorf("Until = %v, expected %v", w.Until, now)
			}
		})
	}
}

func TestParse_EmptyUsesDefault(t *testing.T) {
	w, err := Parse("", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Spec != DefaultSpec {
		t.Errorf("Spec = %q, expected %q", w.Spec, DefaultSpec)
	}
	if !w.Since.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("Since = %v, expected 7 days before now", w.Since)
	}
}

func TestParse_InvalidFallsBackToWeek(t *testing.T) {
	tests := []string{"weekly", "0.weeks", "-1.days", "two.weeks", "1.fortnight"}

	for _, spec := range tests {
		t.Run(spec, func(t *testing.T) {
			w, err := Parse(spec, now)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !w.Since.Equal(now.AddDate(0, 0, -7)) {
				t.Errorf("Since = %v, expected 7-day fallback", w.Since)
			}
		})
	}
}

func TestWindow_Description(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{spec: "1.week", want: "Last 7 days"},
		{spec: "2.weeks", want: "Last 14 days"},
		{spec: "3.months", want: "Last 90 days"},
		{spec: "4.weeks", want: "Last 28 days"},
		{spec: "yesterday", want: "Since yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			w := Window{Spec: tt.spec}
			if got := w.Description(); got != tt.want {
				t.Errorf("Description() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestWindow_FilenameToken(t *testing.T) {
	w := Window{Spec: "2.weeks"}
	if got := w.FilenameToken(); got != "2weeks" {
		t.Errorf("FilenameToken() = %q, expected %q", got, "2weeks")
	}
}

func TestWindow_SinceDate(t *testing.T) {
	w := Window{Since: time.Date(2025, 7, 8, 23, 59, 0, 0, time.UTC)}
	if got := w.SinceDate(); got != "2025-07-08" {
		t.Errorf("SinceDate() = %q, expected %q", got, "2025-07-08")
	}
}
