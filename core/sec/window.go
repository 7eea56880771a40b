// core/sec/window.go
package sec

import "fmt"

// Window is an inclusive molecular-weight range in kDa.
type Window struct {
	Min float64
	Max float64
}

// NormalizeWindow swaps reversed bounds and clamps both ends to >= 0.
// Column catalogs may declare their pairs in either order.
func NormalizeWindow(min, max float64) Window {
	if min > max {
		min, max = max, min
	}
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	return Window{Min: min, Max: max}
}

// Intersect returns the overlap of two windows; ok is false when they are
// disjoint.
func (w Window) Intersect(o Window) (eff Window, ok bool) {
	eff = Window{Min: maxf(w.Min, o.Min), Max: minf(w.Max, o.Max)}
	if eff.Min > eff.Max {
		return Window{}, false
	}
	return eff, true
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MalformedColumnError reports a column range that did not resolve to a
// two-element [min_kDa, max_kDa] pair.
type MalformedColumnError struct {
	Label string
	Value any
}

func (e *MalformedColumnError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("SEC column %q must resolve to [min_kDa, max_kDa], got %v", e.Label, e.Value)
	}
	return fmt.Sprintf("SEC column must resolve to [min_kDa, max_kDa], got %v", e.Value)
}

// WindowFromValue converts a resolved column option value into a normalized
// window. label is used for diagnostics only and may be empty.
func WindowFromValue(label string, v any) (Window, error) {
	switch t := v.(type) {
	case []float64:
		if len(t) != 2 {
			return Window{}, &MalformedColumnError{Label: label, Value: v}
		}
		return NormalizeWindow(t[0], t[1]), nil
	case []any:
		if len(t) != 2 {
			return Window{}, &MalformedColumnError{Label: label, Value: v}
		}
		lo, ok1 := numeric(t[0])
		hi, ok2 := numeric(t[1])
		if !ok1 || !ok2 {
			return Window{}, &MalformedColumnError{Label: label, Value: v}
		}
		return NormalizeWindow(lo, hi), nil
	}
	return Window{}, &MalformedColumnError{Label: label, Value: v}
}

func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}
