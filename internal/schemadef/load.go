// internal/schemadef/load.go

// Package schemadef loads declarative module definitions from a directory of
// JSON/YAML files and validates them into a schema.Library.
package schemadef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"purisim-core/schema"
)

// LoadDir reads every .json/.yaml/.yml file in dir and merges the module
// definitions. A module id declared in more than one file is an authoring
// error.
func LoadDir(dir string) (schema.Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	lib := schema.Library{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		var part schema.Library
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json":
			part, err = loadJSON(path)
		case ".yaml", ".yml":
			part, err = loadYAML(path)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for id, mod := range part {
			if _, dup := lib[id]; dup {
				return nil, fmt.Errorf("%s: module %q defined more than once", path, id)
			}
			lib[id] = mod
		}
	}
	if err := Validate(lib); err != nil {
		return nil, err
	}
	return lib, nil
}

func loadJSON(path string) (schema.Library, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lib schema.Library
	if err := json.Unmarshal(b, &lib); err != nil {
		return nil, err
	}
	return lib, nil
}

// Validate enforces the structural rules the form layer depends on: map
// keys match declared ids, every module has settings, and choice-style
// fields declare their options.
func Validate(lib schema.Library) error {
	for id, mod := range lib {
		if mod == nil || mod.ID == "" {
			return fmt.Errorf("module %q is missing its id field", id)
		}
		if mod.ID != id {
			return fmt.Errorf("module key %q does not match declared id %q", id, mod.ID)
		}
		if len(mod.Settings) == 0 {
			return fmt.Errorf("module %q has no settings", id)
		}
		for name, f := range mod.Settings {
			if f == nil {
				return fmt.Errorf("module %q setting %q is empty", id, name)
			}
			if (f.Kind == schema.KindChoice || f.Kind == schema.KindMultiChoice) && len(f.Options) == 0 {
				return fmt.Errorf("module %q setting %q requires options for kind %q", id, name, f.Kind)
			}
		}
	}
	return nil
}
