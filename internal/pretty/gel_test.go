// internal/pretty/gel_test.go
package pretty

import (
	"strings"
	"testing"
)

func TestRenderShape(t *testing.T) {
	lanes := []Lane{
		{Label: "lysate", Bands: []Band{{KDa: 50, Abundance: 10}, {KDa: 150, Abundance: 5}}},
		{Label: "sec", Bands: []Band{{KDa: 50, Abundance: 10}}},
	}
	got := Render(lanes, DefaultOptions)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != DefaultOptions.Rows+1 {
		t.Fatalf("want %d lines, got %d:\n%s", DefaultOptions.Rows+1, len(lines), got)
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "# ") {
			t.Errorf("line missing comment prefix: %q", l)
		}
	}
	if !strings.Contains(lines[0], "lysate") || !strings.Contains(lines[0], "sec") {
		t.Errorf("lane labels missing: %q", lines[0])
	}
}

func TestRenderIntensity(t *testing.T) {
	got := Render([]Lane{
		{Label: "L", Bands: []Band{{KDa: 50, Abundance: 10}, {KDa: 300, Abundance: 1}}},
	}, DefaultOptions)
	if !strings.Contains(got, strings.Repeat(DefaultOptions.StrongGlyph, DefaultOptions.Width)) {
		t.Errorf("dominant band should render strong:\n%s", got)
	}
	if !strings.Contains(got, strings.Repeat(DefaultOptions.FaintGlyph, DefaultOptions.Width)) {
		t.Errorf("trace band should render faint:\n%s", got)
	}
}

func TestRenderHeavierBandsSitHigher(t *testing.T) {
	o := DefaultOptions
	heavy := rowFor(300, o)
	light := rowFor(20, o)
	if heavy >= light {
		t.Errorf("heavy band row %d should be above light band row %d", heavy, light)
	}
}

func TestRenderClampsOutOfRange(t *testing.T) {
	o := DefaultOptions
	if r := rowFor(1e6, o); r != 0 {
		t.Errorf("overweight band should clamp to top, got row %d", r)
	}
	if r := rowFor(0.001, o); r != o.Rows-1 {
		t.Errorf("tiny band should clamp to bottom, got row %d", r)
	}
}

func TestRenderEmptyLane(t *testing.T) {
	got := Render([]Lane{{Label: "empty"}}, DefaultOptions)
	if strings.Contains(got, DefaultOptions.StrongGlyph) {
		t.Errorf("empty lane must not draw bands:\n%s", got)
	}
}
