// internal/schemadef/load_test.go
package schemadef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purisim-core/schema"
)

func writeDef(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const fastaInputJSON = `{
  "fasta_input": {
    "id": "fasta_input",
    "label": "FASTA input",
    "settings": {
      "Select FASTA file": {
        "kind": "choice",
        "options": {"Sample lysate": "data/sample.fasta"},
        "default": "Sample lysate",
        "required": true
      }
    }
  }
}`

const sizeExclusionYAML = `size_exclusion:
  id: size_exclusion
  label: Size-exclusion chromatography
  settings:
    SEC mode:
      kind: choice
      options:
        Simulate column: simulate
        Recommend column: recommend
      default: Simulate column
    SEC column:
      kind: choice
      options:
        Superdex 200: [10, 600]
        Superdex 75: [3, 70]
        Sephacryl S-100: [1, 100]
    Target minimum MW (kDa):
      kind: decimal
      default: 10
      min: 0
      max: 1000
      step: 0.5
`

func TestLoadDirMergesJSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "fasta_input.json", fastaInputJSON)
	writeDef(t, dir, "size_exclusion.yaml", sizeExclusionYAML)
	writeDef(t, dir, "notes.txt", "ignored")

	lib, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, lib, 2)

	fi := lib["fasta_input"]
	require.NotNil(t, fi)
	assert.Equal(t, "FASTA input", fi.Label)
	field := fi.Settings["Select FASTA file"]
	require.NotNil(t, field)
	assert.Equal(t, schema.KindChoice, field.Kind)
	v, ok := field.Options.Lookup("Sample lysate")
	require.True(t, ok)
	assert.Equal(t, "data/sample.fasta", v)

	se := lib["size_exclusion"]
	require.NotNil(t, se)
	col := se.Settings["SEC column"]
	require.NotNil(t, col)
	// YAML mapping order must survive into the catalog order.
	assert.Equal(t, []string{"Superdex 200", "Superdex 75", "Sephacryl S-100"}, col.Options.Labels())

	dec := se.Settings["Target minimum MW (kDa)"]
	require.NotNil(t, dec)
	assert.Equal(t, schema.KindDecimal, dec.Kind)
	require.NotNil(t, dec.Min)
	assert.Equal(t, 0.0, *dec.Min)
	require.NotNil(t, dec.Max)
	assert.Equal(t, 1000.0, *dec.Max)
	assert.Equal(t, 0.5, dec.Step)
}

func TestLoadDirRejectsIDMismatch(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "bad.json", `{"fasta_input": {"id": "other", "settings": {"x": {"kind": "text"}}}}`)
	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestLoadDirRejectsDuplicateModule(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "a.json", fastaInputJSON)
	writeDef(t, dir, "b.json", fastaInputJSON)
	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defined more than once")
}

func TestLoadDirRejectsChoiceWithoutOptions(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "bad.json", `{"m": {"id": "m", "settings": {"pick": {"kind": "choice"}}}}`)
	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires options")
}

func TestLoadDirRejectsMissingSettings(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "bad.json", `{"m": {"id": "m"}}`)
	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no settings")
}
