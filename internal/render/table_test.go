package render

import (
	"strings"
	"testing"

	"github.com/flarebyte/baldrick-timeteller/internal/duration"
)

func mustDuration(t *testing.T, start, end string) *duration.Duration {
	t.Helper()
	d, err := duration.New(nil, start, end)
	if err != nil {
		t.Fatalf("duration.New(%q, %q) failed: %v", start, end, err)
	}
	return d
}

func TestFormatSelectsRenderer(t *testing.T) {
	d := mustDuration(t, "2024-07-01", "2025-08-02")
	cases := []struct {
		output   string
		expected string
	}{
		{"", "1y 1mo 1d"},
		{"default", "1y 1mo 1d"},
		{"compact-weeks", "1y 1mo 1d"},
		{"iso", "P1Y1M1D"},
	}
	for _, c := range cases {
		got, err := Format(d, c.output)
		if err != nil {
			t.Fatalf("Format(%q) failed: %v", c.output, err)
		}
		if got != c.expected {
			t.Fatalf("Format(%q) = %q, want %q", c.output, got, c.expected)
		}
	}

	if _, err := Format(d, "bogus"); err == nil {
		t.Fatal("expected an error for an unknown output name")
	}
}

func TestDayCountText(t *testing.T) {
	cases := map[int]string{
		1:    "1 day",
		2:    "2 days",
		397:  "397 days",
		1000: "1_000 days",
	}
	for n, expected := range cases {
		if got := DayCountText(n); got != expected {
			t.Fatalf("DayCountText(%d) = %q, want %q", n, got, expected)
		}
	}
}

func TestDurationTable(t *testing.T) {
	d := mustDuration(t, "2024-07-01", "2024-07-02")
	var buf strings.Builder
	if err := DurationTable(&buf, d, Options{Output: "default", Color: "never"}); err != nil {
		t.Fatalf("DurationTable failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"2024-07-01", "Monday",
		"2024-07-02", "Tuesday",
		"duration", "1d", "elapsed time",
		"day count", "2 days", "start/end incl.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestDurationTableWithColorAlways(t *testing.T) {
	d := mustDuration(t, "2024-07-01", "2024-07-02")
	var buf strings.Builder
	if err := DurationTable(&buf, d, Options{Output: "default", Color: "always"}); err != nil {
		t.Fatalf("DurationTable failed: %v", err)
	}
	// Styled rows must carry the same cell text as the plain rendering.
	out := buf.String()
	for _, want := range []string{"start", "end", "duration", "day count", "2024-07-01", "2 days"} {
		if !strings.Contains(out, want) {
			t.Fatalf("colorized table output missing %q:\n%s", want, out)
		}
	}
}

func TestDurationTableRejectsUnknownOutput(t *testing.T) {
	d := mustDuration(t, "2024-07-01", "2024-07-02")
	var buf strings.Builder
	if err := DurationTable(&buf, d, Options{Output: "nope"}); err == nil {
		t.Fatal("expected an error for an unknown output name")
	}
}
