// core/sec/column.go
package sec

import "purisim-core/schema"

// Column is one catalog entry: a labeled fixed weight window.
type Column struct {
	Label  string
	Window Window
}

// CatalogFromOptions builds the ordered column catalog from a "SEC column"
// options declaration. Declaration order is preserved because Recommend
// keeps the first of tied columns.
func CatalogFromOptions(opts schema.Options) ([]Column, error) {
	cols := make([]Column, 0, len(opts))
	for _, opt := range opts {
		w, err := WindowFromValue(opt.Label, opt.Value)
		if err != nil {
			return nil, err
		}
		cols = append(cols, Column{Label: opt.Label, Window: w})
	}
	return cols, nil
}
