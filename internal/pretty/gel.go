// internal/pretty/gel.go

// Package pretty renders a run as an ASCII "virtual gel": one lane per
// pipeline step, bands placed on a log-scaled molecular-weight axis with
// glyph intensity tracking relative abundance within the lane.
package pretty

import (
	"fmt"
	"math"
	"strings"
)

// Band is one protein species to draw in a lane.
type Band struct {
	KDa       float64
	Abundance float64
}

// Lane is one rendered gel lane.
type Lane struct {
	Label string
	Bands []Band
}

// Options control the ASCII rendering.
type Options struct {
	Rows   int     // vertical resolution of the gel
	Width  int     // lane width in characters
	MinKDa float64 // bottom of the gel
	MaxKDa float64 // top of the gel

	// Glyphs by relative abundance within the lane.
	StrongGlyph string // default "#"
	MediumGlyph string // default "="
	FaintGlyph  string // default "-"
}

// DefaultOptions cover the usual preparative range.
var DefaultOptions = Options{
	Rows:        12,
	Width:       9,
	MinKDa:      5,
	MaxKDa:      600,
	StrongGlyph: "#",
	MediumGlyph: "=",
	FaintGlyph:  "-",
}

const linePrefix = "# "

// Render draws the lanes as comment-prefixed text suitable for appending to
// a text report.
func Render(lanes []Lane, o Options) string {
	if o.Rows <= 1 {
		o.Rows = DefaultOptions.Rows
	}
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.MinKDa <= 0 {
		o.MinKDa = DefaultOptions.MinKDa
	}
	if o.MaxKDa <= o.MinKDa {
		o.MaxKDa = o.MinKDa * 100
	}
	if o.StrongGlyph == "" {
		o.StrongGlyph = DefaultOptions.StrongGlyph
	}
	if o.MediumGlyph == "" {
		o.MediumGlyph = DefaultOptions.MediumGlyph
	}
	if o.FaintGlyph == "" {
		o.FaintGlyph = DefaultOptions.FaintGlyph
	}

	var b strings.Builder
	b.WriteString(linePrefix + "   kDa")
	for _, l := range lanes {
		b.WriteString(" | " + pad(l.Label, o.Width))
	}
	b.WriteString("\n")

	grid := make([][]string, len(lanes))
	for i, l := range lanes {
		grid[i] = laneColumn(l.Bands, o)
	}

	logMin, logMax := math.Log10(o.MinKDa), math.Log10(o.MaxKDa)
	for row := 0; row < o.Rows; row++ {
		frac := float64(row) / float64(o.Rows-1)
		kda := math.Pow(10, logMax-frac*(logMax-logMin))
		fmt.Fprintf(&b, "%s%6.0f", linePrefix, kda)
		for i := range lanes {
			b.WriteString(" | " + pad(grid[i][row], o.Width))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// laneColumn computes one glyph row per gel row for a single lane.
func laneColumn(bands []Band, o Options) []string {
	rows := make([]string, o.Rows)

	maxAb := 0.0
	for _, bd := range bands {
		if bd.Abundance > maxAb {
			maxAb = bd.Abundance
		}
	}
	for _, bd := range bands {
		r := rowFor(bd.KDa, o)
		g := glyphFor(bd.Abundance, maxAb, o)
		// Strongest band wins when two species co-migrate.
		if rows[r] == "" || bandRank(rows[r], o) < bandRank(g, o) {
			rows[r] = g
		}
	}
	for i, g := range rows {
		if g != "" {
			rows[i] = strings.Repeat(g, o.Width)
		}
	}
	return rows
}

func rowFor(kda float64, o Options) int {
	logMin, logMax := math.Log10(o.MinKDa), math.Log10(o.MaxKDa)
	if kda < o.MinKDa {
		kda = o.MinKDa
	}
	if kda > o.MaxKDa {
		kda = o.MaxKDa
	}
	frac := (logMax - math.Log10(kda)) / (logMax - logMin)
	r := int(math.Round(frac * float64(o.Rows-1)))
	if r < 0 {
		r = 0
	}
	if r > o.Rows-1 {
		r = o.Rows - 1
	}
	return r
}

func glyphFor(ab, maxAb float64, o Options) string {
	if maxAb <= 0 || ab <= 0 {
		return o.FaintGlyph
	}
	switch rel := ab / maxAb; {
	case rel >= 0.66:
		return o.StrongGlyph
	case rel >= 0.33:
		return o.MediumGlyph
	default:
		return o.FaintGlyph
	}
}

func bandRank(g string, o Options) int {
	switch {
	case strings.HasPrefix(g, o.StrongGlyph):
		return 3
	case strings.HasPrefix(g, o.MediumGlyph):
		return 2
	case strings.HasPrefix(g, o.FaintGlyph):
		return 1
	}
	return 0
}

func pad(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
