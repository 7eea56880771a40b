// internal/writers/formats.go
package writers

import (
	"io"

	"purisim/internal/jsonutil"
	"purisim/internal/output"
	"purisim/internal/pretty"
	"purisim/pkg/api"
)

func init() {
	Register("text", writeText)
	Register("json", writeJSON)
	Register("fasta", writeFASTA)
}

func writeText(w io.Writer, p *Payload) error {
	if err := output.WriteTSV(w, p.Final, p.Header); err != nil {
		return err
	}
	if !p.Pretty || p.Report == nil {
		return nil
	}
	lanes := make([]pretty.Lane, 0, len(p.Report.Steps))
	for _, s := range p.Report.Steps {
		lanes = append(lanes, pretty.Lane{Label: s.Module, Bands: bandsFor(s)})
	}
	_, err := io.WriteString(w, pretty.Render(lanes, pretty.DefaultOptions))
	return err
}

func bandsFor(s api.StepV1) []pretty.Band {
	bands := make([]pretty.Band, 0, len(s.Proteins))
	for _, pr := range s.Proteins {
		if pr.WeightKDa == nil {
			continue
		}
		bands = append(bands, pretty.Band{KDa: *pr.WeightKDa, Abundance: pr.Abundance})
	}
	return bands
}

func writeJSON(w io.Writer, p *Payload) error {
	if p.Pretty {
		return jsonutil.EncodePretty(w, p.Report)
	}
	return jsonutil.Encode(w, p.Report)
}

func writeFASTA(w io.Writer, p *Payload) error {
	return output.WriteFASTA(w, p.Final)
}
