// internal/modules/fasta_input.go
package modules

import (
	"context"
	"fmt"

	"purisim-core/fasta"
	"purisim-core/protein"
	"purisim-core/schema"
	"purisim/internal/registry"
)

// Setting names shared with the module definition files.
const (
	FastaInputID     = "fasta_input"
	SettingFastaFile = "Select FASTA file"
)

// FastaInput loads proteins from a FASTA file, replacing the pool contents.
type FastaInput struct{}

func (FastaInput) ID() string { return FastaInputID }

// Run resolves the selected file, parses it, clears the pool, and inserts
// one record per sequence. A load always starts from an empty pool, so
// downstream modules never see state from a previous load.
func (FastaInput) Run(ctx context.Context, req *registry.Request) (*registry.Result, error) {
	v, err := schema.Resolve(SettingFastaFile, FastaInputID, req.Settings, req.Library)
	if err != nil {
		return nil, err
	}
	path, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("setting %q must resolve to a file path, got %T", SettingFastaFile, v)
	}
	recs, err := fasta.ReadPath(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req.Pool.Clear()
	for _, r := range recs {
		req.Pool.Add(protein.New(r.Header, r.Sequence))
	}
	return &registry.Result{Proteins: req.Pool.Proteins()}, nil
}
