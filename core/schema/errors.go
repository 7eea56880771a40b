// core/schema/errors.go
package schema

import (
	"fmt"
	"strings"
)

// UnknownSettingError reports a setting name absent from the module schema.
// Valid carries the module's setting names as a diagnostic aid.
type UnknownSettingError struct {
	Module  string
	Setting string
	Valid   []string
}

func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("module %q has no setting %q (valid settings: %s)",
		e.Module, e.Setting, strings.Join(e.Valid, ", "))
}

// InvalidOptionError reports a selected label that is not an option of a
// choice/multichoice field.
type InvalidOptionError struct {
	Module  string
	Setting string
	Label   string
	Options []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("setting %q of module %q: %q is not a valid option (choices: %s)",
		e.Setting, e.Module, e.Label, strings.Join(e.Options, ", "))
}

// MissingValueError reports a setting that requires a selected value but
// received none. Boolean fields are exempt: absence resolves to false.
type MissingValueError struct {
	Module  string
	Setting string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("setting %q of module %q has no selected value", e.Setting, e.Module)
}

// ConversionError reports a value that could not be converted to the type
// the field kind demands.
type ConversionError struct {
	Module  string
	Setting string
	Value   any
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("setting %q of module %q: cannot convert %v: %v",
		e.Setting, e.Module, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// UnsupportedKindError reports a schema-declared kind the resolver does not
// implement.
type UnsupportedKindError struct {
	Module  string
	Setting string
	Kind    Kind
}

func (e *UnsupportedKindError) Error() string {
	supported := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		supported = append(supported, string(k))
	}
	return fmt.Sprintf("setting %q of module %q declares unsupported kind %q (supported: %s)",
		e.Setting, e.Module, e.Kind, strings.Join(supported, ", "))
}
