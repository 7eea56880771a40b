// core/sec/sec.go

// Package sec models size-exclusion chromatography as a weight-window filter
// over the protein pool, plus a catalog search that picks the column with
// the best abundance-weighted purity for a target window.
package sec

import (
	"context"
	"fmt"

	"purisim-core/protein"
)

// Operating modes of the size_exclusion module.
const (
	ModeSimulate  = "simulate"
	ModeRecommend = "recommend"
)

// InvalidModeError reports a SEC mode outside simulate/recommend.
type InvalidModeError struct{ Mode string }

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid SEC mode %q (expected %q or %q)", e.Mode, ModeSimulate, ModeRecommend)
}

// NoMatchAnnotation marks records left untouched because no catalog column
// overlapped the target window with measurable abundance.
const NoMatchAnnotation = "SEC: no suitable column found for target window"

// Simulate fractionates the pool in place: only records with a known weight
// inside the window survive, and each survivor gets a provenance note naming
// the column. An empty result is valid.
func Simulate(pool *protein.Pool, w Window, label string) {
	pool.FilterByWeight(protein.SelectInside, w.Min, w.Max)
	if label == "" {
		return
	}
	note := "SEC: " + label
	for _, p := range pool.Proteins() {
		p.Annotate(note)
	}
}

// AbundanceInWindow sums abundance over records whose weight is known and
// lies inside [a, b]. Records with non-positive abundance contribute zero.
func AbundanceInWindow(pool *protein.Pool, a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	total := 0.0
	for _, p := range pool.Proteins() {
		if p.Abundance <= 0 || p.Weight == nil {
			continue
		}
		if w := *p.Weight; a <= w && w <= b {
			total += p.Abundance
		}
	}
	return total
}

// Recommendation is the outcome of a catalog search. Found is false when no
// column had usable overlap and positive captured abundance; the caller then
// leaves the pool untouched.
type Recommendation struct {
	Label     string
	Effective Window
	Score     float64
	Found     bool
}

// Recommend scores every catalog column against the target window and picks
// the best. A column's score is inTarget/inColumn: the fraction of all the
// abundance the column would capture that also falls inside the target, so a
// narrow well-aimed column beats a wide one that captures much outside the
// target. Ties keep the first column in catalog order. Columns with no
// target overlap, or with no captured abundance at all, are skipped.
//
// Scoring only reads the pool; the chosen fractionation is applied by the
// caller (with the effective window, not the column's full window).
func Recommend(ctx context.Context, pool *protein.Pool, target Window, catalog []Column) (Recommendation, error) {
	target = NormalizeWindow(target.Min, target.Max)
	best := Recommendation{Score: -1}
	for _, col := range catalog {
		if err := ctx.Err(); err != nil {
			return Recommendation{}, err
		}
		eff, ok := col.Window.Intersect(target)
		if !ok {
			continue
		}
		inTarget := AbundanceInWindow(pool, eff.Min, eff.Max)
		inColumn := AbundanceInWindow(pool, col.Window.Min, col.Window.Max)
		if inColumn <= 0 {
			continue
		}
		// Denominator is the column's full catch, not just the overlap.
		score := inTarget / inColumn
		if score > best.Score {
			best = Recommendation{Label: col.Label, Effective: eff, Score: score, Found: true}
		}
	}
	if !best.Found {
		return Recommendation{}, nil
	}
	return best, nil
}

// AnnotateNoMatch records the graceful no-column outcome on every remaining
// pool record.
func AnnotateNoMatch(pool *protein.Pool) {
	for _, p := range pool.Proteins() {
		p.Annotate(NoMatchAnnotation)
	}
}
