// core/schema/options.go
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is one selectable label with its resolved value. For SEC columns
// the value is a [minKDa, maxKDa] pair.
type Option struct {
	Label string
	Value any
}

// Options preserves declaration order. Order is load-bearing: the SEC
// recommend search keeps the first of tied columns.
type Options []Option

// Lookup returns the value mapped by label.
func (o Options) Lookup(label string) (any, bool) {
	for _, opt := range o {
		if opt.Label == label {
			return opt.Value, true
		}
	}
	return nil, false
}

// Labels returns the option labels in declaration order.
func (o Options) Labels() []string {
	out := make([]string, 0, len(o))
	for _, opt := range o {
		out = append(out, opt.Label)
	}
	return out
}

// UnmarshalJSON decodes a JSON object preserving key order, which the
// default map decoding would lose.
func (o *Options) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("options: expected object, got %v", tok)
	}
	var out Options
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("options: non-string key %v", keyTok)
		}
		var val any
		if err := dec.Decode(&val); err != nil {
			return err
		}
		out = append(out, Option{Label: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return err
	}
	*o = out
	return nil
}

// MarshalJSON writes the options back as an object in declaration order.
func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(opt.Label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(opt.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
