// pkg/api/report_v1.go

// Package api defines the stable wire schema (v1) for run reports.
package api

// ProteinV1 is the wire form of one pool record.
type ProteinV1 struct {
	Accession     string   `json:"accession"`
	Header        string   `json:"header"`
	Length        int      `json:"length"`
	WeightKDa     *float64 `json:"weight_kda,omitempty"`
	Abundance     float64  `json:"abundance"`
	Modifications []string `json:"modifications,omitempty"`
}

// StepV1 is one executed module instance with its resulting pool snapshot.
type StepV1 struct {
	Instance     string      `json:"instance"`
	Module       string      `json:"module"`
	ChosenColumn string      `json:"chosen_column,omitempty"`
	Proteins     []ProteinV1 `json:"proteins"`
}

// RunReportV1 is the top-level JSON output of a pipeline run.
type RunReportV1 struct {
	RunID string   `json:"run_id"`
	Steps []StepV1 `json:"steps"`
}
