// internal/pipeline/runner.go

// Package pipeline executes module instances in user-chosen order, threading
// one protein pool across dispatcher calls and re-seeding schema defaults so
// a re-rendered configuration reflects what actually ran.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"purisim-core/protein"
	"purisim-core/schema"
	"purisim/internal/registry"
)

// Instance is one configured occurrence of a module in the run order. The
// same module may appear multiple times with different settings.
type Instance struct {
	ID       string
	Module   string
	Settings schema.Settings
}

// StepResult is the renderable outcome of one instance.
type StepResult struct {
	Instance     string
	Module       string
	ChosenColumn string
	Proteins     []*protein.Protein
}

// Runner drives a pipeline over a closed module registry.
type Runner struct {
	reg *registry.Registry
	log *zap.Logger
}

func New(reg *registry.Registry, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{reg: reg, log: log}
}

// Run executes the instances in order against one pool, stopping at the
// first failing instance. Instances without an id get a fresh UUID so step
// results stay addressable when a module appears twice.
func (r *Runner) Run(ctx context.Context, lib schema.Library, instances []Instance, pool *protein.Pool) ([]StepResult, error) {
	results := make([]StepResult, 0, len(instances))
	for i := range instances {
		inst := &instances[i]
		if inst.ID == "" {
			inst.ID = uuid.NewString()
		}
		if inst.Settings == nil {
			inst.Settings = schema.Settings{}
		}

		start := time.Now()
		res, err := r.reg.Dispatch(ctx, inst.Module, &registry.Request{
			Pool:     pool,
			Settings: inst.Settings,
			Library:  lib,
		})
		if err != nil {
			return results, fmt.Errorf("instance %s (%s): %w", inst.ID, inst.Module, err)
		}

		reseedDefaults(lib, inst.Module, inst.Settings)
		r.log.Info("module executed",
			zap.String("instance", inst.ID),
			zap.String("module", inst.Module),
			zap.Int("pool_size", pool.Len()),
			zap.String("chosen_column", res.ChosenColumn),
			zap.Duration("elapsed", time.Since(start)),
		)
		results = append(results, StepResult{
			Instance:     inst.ID,
			Module:       inst.Module,
			ChosenColumn: res.ChosenColumn,
			Proteins:     res.Proteins,
		})
	}
	return results, nil
}

// reseedDefaults copies the instance's selections, including values written
// back by recommend mode, into the schema defaults used for re-rendering.
func reseedDefaults(lib schema.Library, moduleID string, selected schema.Settings) {
	mod, ok := lib[moduleID]
	if !ok {
		return
	}
	for name, value := range selected {
		if f, ok := mod.Settings[name]; ok {
			f.Default = value
		}
	}
}
