// internal/writers/registry.go

// Package writers maps output formats onto report writers. Formats register
// themselves in init() so adding one never touches a switch statement.
package writers

import (
	"fmt"
	"io"
	"sort"

	"purisim-core/protein"
	"purisim/pkg/api"
)

// Payload carries everything a format may want to render.
type Payload struct {
	Report *api.RunReportV1    // full per-step report
	Final  []*protein.Protein  // pool contents after the last step
	Header bool                // text/TSV header line
	Pretty bool                // indented JSON / virtual gel block
}

var reportWriters = map[string]func(io.Writer, *Payload) error{}

// Register installs a writer for a format name (last registration wins).
func Register(format string, fn func(io.Writer, *Payload) error) {
	reportWriters[format] = fn
}

// Write dispatches the payload to the writer registered for format.
func Write(format string, w io.Writer, p *Payload) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
