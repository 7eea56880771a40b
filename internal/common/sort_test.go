// internal/common/sort_test.go
package common

import (
	"testing"

	"purisim-core/protein"
)

func withWeight(header string, kda float64) *protein.Protein {
	p := protein.New(header, "GGG")
	p.Weight = &kda
	return p
}

func TestSortProteinsByAccessionThenWeight(t *testing.T) {
	ps := []*protein.Protein{
		withWeight("sp|P00002|B", 10),
		withWeight("sp|P00001|A heavy", 90),
		withWeight("sp|P00001|A light", 20),
		protein.New("sp|P00001|A unknown", "XXX"),
	}
	SortProteins(ps)

	want := []string{"P00001", "P00001", "P00001", "P00002"}
	for i, acc := range want {
		if ps[i].Accession() != acc {
			t.Fatalf("pos %d: got %s want %s", i, ps[i].Accession(), acc)
		}
	}
	// Unknown weight sorts before known weights within the same accession.
	if ps[0].Weight != nil {
		t.Errorf("unknown weight should sort first, got %v", ps[0].Header)
	}
	if *ps[1].Weight != 20 || *ps[2].Weight != 90 {
		t.Errorf("weights out of order: %v then %v", *ps[1].Weight, *ps[2].Weight)
	}
}
