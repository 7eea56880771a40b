// core/protein/protein.go
package protein

import (
	"strconv"
	"strings"
)

// Protein is one record in the pool. Weight is nil when the molecular
// weight cannot be computed (empty sequence or a residue with no defined
// mass). Modifications is append-only provenance; entries are never removed.
type Protein struct {
	Header        string
	Sequence      string
	Weight        *float64 // kDa
	Abundance     float64
	Modifications []string
}

// New builds a record from a FASTA header and sequence. The weight is
// computed from average residue masses; abundance is taken from a trailing
// "AB=<value>" header token written by the abundance-annotation step.
func New(header, sequence string) *Protein {
	p := &Protein{Header: header, Sequence: sequence}
	if w, ok := WeightKDa(sequence); ok {
		p.Weight = &w
	}
	p.Abundance = parseAbundance(header)
	return p
}

// Accession returns the accession of a UniProt-style "db|ACC|NAME" header,
// otherwise the first whitespace-delimited header token.
func (p *Protein) Accession() string {
	head := p.Header
	if i := strings.IndexAny(head, " \t"); i >= 0 {
		head = head[:i]
	}
	if parts := strings.Split(head, "|"); len(parts) >= 3 {
		return parts[1]
	}
	return head
}

// Annotate appends one provenance note.
func (p *Protein) Annotate(note string) {
	p.Modifications = append(p.Modifications, note)
}

// averageResidueMass maps one-letter residue codes to average masses in Da
// (residue masses, i.e. amino acid minus water). U and O cover the two
// non-standard translated residues.
var averageResidueMass = map[byte]float64{
	'A': 71.0788,
	'R': 156.1875,
	'N': 114.1038,
	'D': 115.0886,
	'C': 103.1388,
	'E': 129.1155,
	'Q': 128.1307,
	'G': 57.0519,
	'H': 137.1411,
	'I': 113.1594,
	'L': 113.1594,
	'K': 128.1741,
	'M': 131.1926,
	'F': 147.1766,
	'P': 97.1167,
	'S': 87.0782,
	'T': 101.1051,
	'W': 186.2132,
	'Y': 163.1760,
	'V': 99.1326,
	'U': 150.0388,
	'O': 237.3018,
}

const waterMassDa = 18.01528

// WeightKDa computes the average molecular weight of a sequence in kDa.
// ok is false for an empty sequence or any residue without a defined mass
// (X, B, Z, gaps); callers treat such records as having unknown weight.
func WeightKDa(sequence string) (float64, bool) {
	if sequence == "" {
		return 0, false
	}
	total := waterMassDa
	for i := 0; i < len(sequence); i++ {
		c := sequence[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		m, ok := averageResidueMass[c]
		if !ok {
			return 0, false
		}
		total += m
	}
	return total / 1000.0, true
}

func parseAbundance(header string) float64 {
	for _, tok := range strings.Fields(header) {
		v, ok := strings.CutPrefix(tok, "AB=")
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return 0
		}
		return f
	}
	return 0
}
