// internal/output/report.go
package output

import (
	"purisim-core/protein"
	"purisim/internal/pipeline"
	"purisim/pkg/api"
)

// ToAPIProtein converts one pool record into the versioned report shape.
func ToAPIProtein(p *protein.Protein) api.ProteinV1 {
	return api.ProteinV1{
		Accession:     p.Accession(),
		Header:        p.Header,
		Length:        len(p.Sequence),
		WeightKDa:     p.Weight,
		Abundance:     p.Abundance,
		Modifications: append([]string(nil), p.Modifications...),
	}
}

// StepsToAPI converts pipeline step results into report steps.
func StepsToAPI(steps []pipeline.StepResult) []api.StepV1 {
	out := make([]api.StepV1, 0, len(steps))
	for _, s := range steps {
		proteins := make([]api.ProteinV1, 0, len(s.Proteins))
		for _, p := range s.Proteins {
			proteins = append(proteins, ToAPIProtein(p))
		}
		out = append(out, api.StepV1{
			Instance:     s.Instance,
			Module:       s.Module,
			ChosenColumn: s.ChosenColumn,
			Proteins:     proteins,
		})
	}
	return out
}
