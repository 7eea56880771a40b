// core/schema/resolve.go
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolve turns the raw user selection for one setting into its typed
// value, dispatching on the field kind declared in the library. It is pure:
// no inputs are mutated and repeated calls are safe.
func Resolve(name, moduleID string, selected Settings, lib Library) (any, error) {
	mod, ok := lib[moduleID]
	if !ok {
		return nil, fmt.Errorf("module %q is not defined in the schema", moduleID)
	}
	field, ok := mod.Settings[name]
	if !ok {
		return nil, &UnknownSettingError{Module: moduleID, Setting: name, Valid: mod.SettingNames()}
	}

	switch field.Kind {
	case KindChoice:
		label, ok := stringValue(selected[name])
		if !ok {
			return nil, &MissingValueError{Module: moduleID, Setting: name}
		}
		v, ok := field.Options.Lookup(label)
		if !ok {
			return nil, &InvalidOptionError{Module: moduleID, Setting: name, Label: label, Options: field.Options.Labels()}
		}
		return v, nil

	case KindMultiChoice:
		labels, ok := stringSliceValue(selected[name])
		if !ok {
			return nil, &MissingValueError{Module: moduleID, Setting: name}
		}
		// Result order follows input order, not option declaration order.
		out := make([]any, 0, len(labels))
		for _, label := range labels {
			v, ok := field.Options.Lookup(label)
			if !ok {
				return nil, &InvalidOptionError{Module: moduleID, Setting: name, Label: label, Options: field.Options.Labels()}
			}
			out = append(out, v)
		}
		return out, nil

	case KindDecimal:
		raw, ok := selected[name]
		if !ok {
			return nil, &MissingValueError{Module: moduleID, Setting: name}
		}
		f, err := floatValue(raw)
		if err != nil {
			return nil, &ConversionError{Module: moduleID, Setting: name, Value: raw, Err: err}
		}
		return f, nil

	case KindFile:
		// Passthrough: resolution to an actual path is the handler's job.
		s, ok := stringValue(selected[name])
		if !ok {
			return nil, &MissingValueError{Module: moduleID, Setting: name}
		}
		return s, nil

	case KindBoolean:
		// Absence is false, never an error.
		return truthy(selected[name]), nil

	case KindText:
		raw, ok := selected[name]
		if !ok {
			return nil, &MissingValueError{Module: moduleID, Setting: name}
		}
		return fmt.Sprintf("%v", raw), nil

	default:
		return nil, &UnsupportedKindError{Module: moduleID, Setting: name, Kind: field.Kind}
	}
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func stringSliceValue(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case string:
		// A single selection posted without list wrapping.
		return []string{t}, true
	}
	return nil, false
}

func floatValue(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	}
	return 0, fmt.Errorf("unsupported value type %T", v)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		if t == "" {
			return false
		}
		if b, err := strconv.ParseBool(t); err == nil {
			return b
		}
		return true
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return true
}
