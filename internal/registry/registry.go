// internal/registry/registry.go

// Package registry maps module ids to their handlers. The table is closed:
// handlers are listed at construction and cannot be extended at runtime.
package registry

import (
	"context"
	"fmt"
	"sort"

	"purisim-core/protein"
	"purisim-core/schema"
)

// Request carries the shared state a handler operates on. Settings is the
// live per-instance selection map; recommend-style handlers may write their
// automatic choices back into it.
type Request struct {
	Pool     *protein.Pool
	Settings schema.Settings
	Library  schema.Library
}

// Result is what a handler hands back for rendering.
type Result struct {
	Proteins     []*protein.Protein
	ChosenColumn string
}

// Handler is one processing module.
type Handler interface {
	ID() string
	Run(ctx context.Context, req *Request) (*Result, error)
}

// NotImplementedError reports a module id with no registered handler.
type NotImplementedError struct{ ModuleID string }

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("module %q is not implemented", e.ModuleID)
}

// Registry dispatches module ids to handlers.
type Registry struct {
	handlers map[string]Handler
}

// New builds the dispatch table. A duplicate id is a wiring bug.
func New(handlers ...Handler) (*Registry, error) {
	m := make(map[string]Handler, len(handlers))
	for _, h := range handlers {
		if _, dup := m[h.ID()]; dup {
			return nil, fmt.Errorf("duplicate module handler %q", h.ID())
		}
		m[h.ID()] = h
	}
	return &Registry{handlers: m}, nil
}

// IDs returns the registered module ids, sorted.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Dispatch runs the handler registered for moduleID. The registry itself
// never touches the pool.
func (r *Registry) Dispatch(ctx context.Context, moduleID string, req *Request) (*Result, error) {
	h, ok := r.handlers[moduleID]
	if !ok {
		return nil, &NotImplementedError{ModuleID: moduleID}
	}
	return h.Run(ctx, req)
}
