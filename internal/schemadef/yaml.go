// internal/schemadef/yaml.go
package schemadef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"purisim-core/schema"
)

// loadYAML decodes a module definition file via yaml.Node so that option
// declaration order survives (plain map decoding would lose it, and the SEC
// recommend tie-break depends on it).
func loadYAML(path string) (schema.Library, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return schema.Library{}, nil
	}
	return libraryFromNode(root.Content[0])
}

func libraryFromNode(n *yaml.Node) (schema.Library, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of module ids", n.Line)
	}
	lib := schema.Library{}
	for i := 0; i < len(n.Content); i += 2 {
		id := n.Content[i].Value
		mod, err := moduleFromNode(n.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", id, err)
		}
		lib[id] = mod
	}
	return lib, nil
}

func moduleFromNode(n *yaml.Node) (*schema.Module, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a module mapping", n.Line)
	}
	mod := &schema.Module{Settings: map[string]*schema.Field{}}
	for i := 0; i < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "id":
			mod.ID = val.Value
		case "label":
			mod.Label = val.Value
		case "settings":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: settings must be a mapping", val.Line)
			}
			for j := 0; j < len(val.Content); j += 2 {
				name := val.Content[j].Value
				field, err := fieldFromNode(val.Content[j+1])
				if err != nil {
					return nil, fmt.Errorf("setting %q: %w", name, err)
				}
				mod.Settings[name] = field
			}
		}
	}
	return mod, nil
}

func fieldFromNode(n *yaml.Node) (*schema.Field, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a field mapping", n.Line)
	}
	f := &schema.Field{}
	for i := 0; i < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "kind":
			f.Kind = schema.Kind(val.Value)
		case "options":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: options must be a mapping", val.Line)
			}
			for j := 0; j < len(val.Content); j += 2 {
				var v any
				if err := val.Content[j+1].Decode(&v); err != nil {
					return nil, err
				}
				f.Options = append(f.Options, schema.Option{Label: val.Content[j].Value, Value: v})
			}
		case "default":
			if err := val.Decode(&f.Default); err != nil {
				return nil, err
			}
		case "required":
			if err := val.Decode(&f.Required); err != nil {
				return nil, err
			}
		case "help":
			f.Help = val.Value
		case "min":
			var x float64
			if err := val.Decode(&x); err != nil {
				return nil, err
			}
			f.Min = &x
		case "max":
			var x float64
			if err := val.Decode(&x); err != nil {
				return nil, err
			}
			f.Max = &x
		case "step":
			if err := val.Decode(&f.Step); err != nil {
				return nil, err
			}
		case "decimal_places":
			if err := val.Decode(&f.DecimalPlaces); err != nil {
				return nil, err
			}
		case "min_length":
			var x int
			if err := val.Decode(&x); err != nil {
				return nil, err
			}
			f.MinLength = &x
		case "max_length":
			var x int
			if err := val.Decode(&x); err != nil {
				return nil, err
			}
			f.MaxLength = &x
		}
	}
	return f, nil
}
