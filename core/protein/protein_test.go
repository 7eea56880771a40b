// core/protein/protein_test.go
package protein

import (
	"math"
	"testing"
)

func TestWeightKDa(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		want    float64 // kDa
		known   bool
	}{
		{name: "penta-glycine", seq: "GGGGG", want: (5*57.0519 + 18.01528) / 1000, known: true},
		{name: "lowercase accepted", seq: "ggggg", want: (5*57.0519 + 18.01528) / 1000, known: true},
		{name: "mixed residues", seq: "ACDE", want: (71.0788 + 103.1388 + 115.0886 + 129.1155 + 18.01528) / 1000, known: true},
		{name: "unknown residue X", seq: "GXG", known: false},
		{name: "ambiguity code B", seq: "GBG", known: false},
		{name: "empty sequence", seq: "", known: false},
	}
	for _, tc := range tests {
		got, ok := WeightKDa(tc.seq)
		if ok != tc.known {
			t.Errorf("%s: known=%v, want %v", tc.name, ok, tc.known)
			continue
		}
		if tc.known && math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: weight %.6f, want %.6f", tc.name, got, tc.want)
		}
	}
}

func TestNewParsesAbundance(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   float64
	}{
		{"annotated", "sp|P12345|TEST_HUMAN Some protein AB=12.5", 12.5},
		{"zero", "sp|P12345|TEST_HUMAN AB=0.0", 0},
		{"absent", "sp|P12345|TEST_HUMAN Some protein", 0},
		{"malformed", "sp|P12345|TEST_HUMAN AB=lots", 0},
		{"negative clamped", "sp|P12345|TEST_HUMAN AB=-3", 0},
	}
	for _, tc := range tests {
		p := New(tc.header, "GGGGG")
		if p.Abundance != tc.want {
			t.Errorf("%s: abundance %v, want %v", tc.name, p.Abundance, tc.want)
		}
	}
}

func TestAccession(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"sp|P69905|HBA_HUMAN Hemoglobin subunit alpha", "P69905"},
		{"tr|A0A024|A0A024_HUMAN", "A0A024"},
		{"contig_42 assembled", "contig_42"},
		{"plain", "plain"},
	}
	for _, tc := range tests {
		p := New(tc.header, "G")
		if got := p.Accession(); got != tc.want {
			t.Errorf("Accession(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestNewUnknownWeight(t *testing.T) {
	p := New("h", "GXG")
	if p.Weight != nil {
		t.Fatalf("expected nil weight for sequence with X, got %v", *p.Weight)
	}
	if q := New("h", "GGG"); q.Weight == nil {
		t.Fatal("expected known weight for GGG")
	}
}
