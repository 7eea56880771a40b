// internal/cli/sets_test.go
package cli

import (
	"reflect"
	"testing"
)

func TestParseSetsSingle(t *testing.T) {
	got, err := ParseSets([]string{"size_exclusion:SEC mode=Simulate column"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v := got["size_exclusion"]["SEC mode"]; v != "Simulate column" {
		t.Errorf("got %v", v)
	}
}

func TestParseSetsAccumulatesList(t *testing.T) {
	got, err := ParseSets([]string{
		"mods:Modifications=His-tag",
		"mods:Modifications=FLAG",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []any{"His-tag", "FLAG"}
	if v := got["mods"]["Modifications"]; !reflect.DeepEqual(v, want) {
		t.Errorf("got %v want %v", v, want)
	}
}

func TestParseSetsValueMayContainEquals(t *testing.T) {
	got, err := ParseSets([]string{"fasta_input:Select FASTA file=a=b"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v := got["fasta_input"]["Select FASTA file"]; v != "a=b" {
		t.Errorf("got %v", v)
	}
}

func TestParseSetsRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"no-colon=1", "mod:no-equals", ":setting=1", "mod:=1"} {
		if _, err := ParseSets([]string{raw}); err == nil {
			t.Errorf("%q: expected error", raw)
		}
	}
}
