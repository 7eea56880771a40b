// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"purisim-core/protein"
)

// WriteFASTA writes the proteins back out as FASTA records, preserving the
// full original header line so annotations and AB= tokens survive a round
// trip through the pipeline.
func WriteFASTA(w io.Writer, list []*protein.Protein) error {
	for _, p := range list {
		if p.Sequence == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", p.Header, p.Sequence); err != nil {
			return err
		}
	}
	return nil
}
