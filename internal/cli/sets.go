// internal/cli/sets.go
package cli

import (
	"fmt"
	"strings"

	"purisim-core/schema"
)

// ParseSets turns repeated --set "module:setting=value" flags into
// per-module settings. Repeating the same module:setting accumulates the
// values into a list, which is how multi-choice selections arrive.
func ParseSets(sets []string) (map[string]schema.Settings, error) {
	out := map[string]schema.Settings{}
	for _, raw := range sets {
		moduleID, rest, ok := strings.Cut(raw, ":")
		if !ok || moduleID == "" {
			return nil, fmt.Errorf("--set %q: expected 'module:setting=value'", raw)
		}
		name, value, ok := strings.Cut(rest, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("--set %q: expected 'module:setting=value'", raw)
		}
		sel := out[moduleID]
		if sel == nil {
			sel = schema.Settings{}
			out[moduleID] = sel
		}
		switch prev := sel[name].(type) {
		case nil:
			sel[name] = value
		case []any:
			sel[name] = append(prev, value)
		default:
			sel[name] = []any{prev, value}
		}
	}
	return out, nil
}
