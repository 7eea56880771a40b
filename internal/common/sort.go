// internal/common/sort.go
package common

import (
	"sort"

	"purisim-core/protein"
)

// LessProtein defines a stable order for report rows (for --sort).
func LessProtein(a, b *protein.Protein) bool {
	if aa, ba := a.Accession(), b.Accession(); aa != ba {
		return aa < ba
	}
	aw, bw := weightOrNeg(a), weightOrNeg(b)
	if aw != bw {
		return aw < bw
	}
	return a.Header < b.Header
}

func weightOrNeg(p *protein.Protein) float64 {
	if p.Weight == nil {
		return -1
	}
	return *p.Weight
}

func SortProteins(ps []*protein.Protein) {
	sort.Slice(ps, func(i, j int) bool { return LessProtein(ps[i], ps[j]) })
}
