// internal/modules/size_exclusion.go
package modules

import (
	"context"
	"fmt"

	"purisim-core/schema"
	"purisim-core/sec"
	"purisim/internal/registry"
)

// Setting names shared with the module definition files.
const (
	SizeExclusionID  = "size_exclusion"
	SettingSECMode   = "SEC mode"
	SettingSECColumn = "SEC column"
	SettingTargetMin = "Target minimum MW (kDa)"
	SettingTargetMax = "Target maximum MW (kDa)"
)

// SizeExclusion fractionates the pool through an SEC column: either the
// user-selected column (simulate) or the best catalog match for a target
// weight range (recommend).
type SizeExclusion struct{}

func (SizeExclusion) ID() string { return SizeExclusionID }

func (SizeExclusion) Run(ctx context.Context, req *registry.Request) (*registry.Result, error) {
	mode, err := schema.Resolve(SettingSECMode, SizeExclusionID, req.Settings, req.Library)
	if err != nil {
		return nil, err
	}
	switch mode {
	case sec.ModeSimulate:
		return simulateColumn(req)
	case sec.ModeRecommend:
		return recommendColumn(ctx, req)
	default:
		return nil, &sec.InvalidModeError{Mode: fmt.Sprintf("%v", mode)}
	}
}

func simulateColumn(req *registry.Request) (*registry.Result, error) {
	v, err := schema.Resolve(SettingSECColumn, SizeExclusionID, req.Settings, req.Library)
	if err != nil {
		return nil, err
	}
	// The human-readable column label rides along in the raw selection.
	label, _ := req.Settings[SettingSECColumn].(string)
	w, err := sec.WindowFromValue(label, v)
	if err != nil {
		return nil, err
	}
	sec.Simulate(req.Pool, w, label)
	return &registry.Result{Proteins: req.Pool.Proteins()}, nil
}

func recommendColumn(ctx context.Context, req *registry.Request) (*registry.Result, error) {
	userMin, err := resolveFloat(SettingTargetMin, req)
	if err != nil {
		return nil, err
	}
	userMax, err := resolveFloat(SettingTargetMax, req)
	if err != nil {
		return nil, err
	}
	target := sec.NormalizeWindow(userMin, userMax)

	mod := req.Library[SizeExclusionID] // presence checked by Resolve above
	field, ok := mod.Settings[SettingSECColumn]
	if !ok {
		return nil, &schema.UnknownSettingError{Module: SizeExclusionID, Setting: SettingSECColumn, Valid: mod.SettingNames()}
	}
	catalog, err := sec.CatalogFromOptions(field.Options)
	if err != nil {
		return nil, err
	}

	best, err := sec.Recommend(ctx, req.Pool, target, catalog)
	if err != nil {
		return nil, err
	}
	if !best.Found {
		// Not an error: leave the pool as-is and record why.
		sec.AnnotateNoMatch(req.Pool)
		return &registry.Result{Proteins: req.Pool.Proteins()}, nil
	}

	// Surface the automatic choice so a re-rendered configuration shows it.
	req.Settings[SettingSECColumn] = best.Label
	sec.Simulate(req.Pool, best.Effective, best.Label)
	return &registry.Result{Proteins: req.Pool.Proteins(), ChosenColumn: best.Label}, nil
}

func resolveFloat(name string, req *registry.Request) (float64, error) {
	v, err := schema.Resolve(name, SizeExclusionID, req.Settings, req.Library)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("setting %q must resolve to a number, got %T", name, v)
	}
	return f, nil
}

// All returns every built-in module handler, in registration order.
func All() []registry.Handler {
	return []registry.Handler{FastaInput{}, SizeExclusion{}}
}
