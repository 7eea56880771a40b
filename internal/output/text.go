// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"purisim-core/protein"
)

// TSVHeader is the column header for text/TSV output.
const TSVHeader = "accession\tlength\tmw_kda\tabundance\tmodifications"

// WriteTSV writes proteins as a tab-delimited table, one row per protein.
func WriteTSV(w io.Writer, list []*protein.Protein, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, p := range list {
		if _, err := fmt.Fprintf(
			w, "%s\t%d\t%s\t%g\t%s\n",
			p.Accession(), len(p.Sequence), weightCell(p), p.Abundance,
			strings.Join(p.Modifications, ";"),
		); err != nil {
			return err
		}
	}
	return nil
}

// weightCell renders the molecular weight column; proteins whose weight could
// not be computed print NA.
func weightCell(p *protein.Protein) string {
	if p.Weight == nil {
		return "NA"
	}
	return fmt.Sprintf("%.2f", *p.Weight)
}
