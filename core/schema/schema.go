// core/schema/schema.go

// Package schema describes module settings and resolves loosely-typed user
// selections into typed values.
package schema

import "sort"

// Kind is a closed set of field kinds a setting can declare.
type Kind string

const (
	KindChoice      Kind = "choice"
	KindMultiChoice Kind = "multichoice"
	KindDecimal     Kind = "decimal"
	KindFile        Kind = "file"
	KindBoolean     Kind = "boolean"
	KindText        Kind = "text"
)

// Kinds lists every supported field kind, in declaration order.
func Kinds() []Kind {
	return []Kind{KindChoice, KindMultiChoice, KindDecimal, KindFile, KindBoolean, KindText}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindChoice, KindMultiChoice, KindDecimal, KindFile, KindBoolean, KindText:
		return true
	}
	return false
}

// Field declares one setting of a module: its kind plus kind-specific
// metadata used by the form layer and the resolver.
type Field struct {
	Kind          Kind     `json:"kind"`
	Options       Options  `json:"options,omitempty"`
	Default       any      `json:"default,omitempty"`
	Required      bool     `json:"required,omitempty"`
	Help          string   `json:"help,omitempty"`
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	Step          float64  `json:"step,omitempty"`
	DecimalPlaces int      `json:"decimal_places,omitempty"`
	MinLength     *int     `json:"min_length,omitempty"`
	MaxLength     *int     `json:"max_length,omitempty"`
}

// Module is one schema-described processing step.
type Module struct {
	ID       string            `json:"id"`
	Label    string            `json:"label,omitempty"`
	Settings map[string]*Field `json:"settings"`
}

// SettingNames returns the module's setting names, sorted for stable
// diagnostics.
func (m *Module) SettingNames() []string {
	names := make([]string, 0, len(m.Settings))
	for name := range m.Settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Library maps module ids to their definitions. It is loaded once per run
// and read-only from the resolver's point of view.
type Library map[string]*Module

// Settings holds raw user-selected values keyed by setting name. Values are
// strings or string lists as they arrive from a form or the CLI.
type Settings map[string]any
