// core/protein/pool.go
package protein

// Selection chooses which side of a weight window survives a filter.
type Selection string

const (
	SelectInside  Selection = "inside"
	SelectOutside Selection = "outside"
)

// Pool is the mutable protein collection for one analysis run. Each run owns
// its own instance; there is no locking because a pool is never shared
// across runs.
type Pool struct {
	records []*Protein
}

// NewPool returns an empty pool.
func NewPool() *Pool { return &Pool{} }

// Add appends one record. Duplicate accessions are not rejected.
func (p *Pool) Add(rec *Protein) {
	if rec == nil {
		return
	}
	p.records = append(p.records, rec)
}

// Clear removes every record.
func (p *Pool) Clear() { p.records = nil }

// Len reports the current record count.
func (p *Pool) Len() int { return len(p.records) }

// Proteins returns the current records in insertion order. The slice is a
// snapshot; the records themselves are shared.
func (p *Pool) Proteins() []*Protein {
	return append([]*Protein(nil), p.records...)
}

// FilterByWeight retains records by weight window, in place. Bounds are
// inclusive. Records with unknown weight never survive a weight filter,
// regardless of selection side.
func (p *Pool) FilterByWeight(sel Selection, min, max float64) {
	if min > max {
		min, max = max, min
	}
	kept := p.records[:0]
	for _, rec := range p.records {
		if rec.Weight == nil {
			continue
		}
		inside := min <= *rec.Weight && *rec.Weight <= max
		if inside == (sel != SelectOutside) {
			kept = append(kept, rec)
		}
	}
	for i := len(kept); i < len(p.records); i++ {
		p.records[i] = nil
	}
	p.records = kept
}
