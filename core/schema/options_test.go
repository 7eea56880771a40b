// core/schema/options_test.go
package schema

import (
	"encoding/json"
	"testing"
)

func TestOptionsJSONOrderPreserved(t *testing.T) {
	// Key order here deliberately differs from sorted order.
	raw := `{"Superdex 200": [10, 600], "Superdex 75": [3, 70], "Sephacryl S-100": [1, 100]}`
	var opts Options
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"Superdex 200", "Superdex 75", "Sephacryl S-100"}
	got := opts.Labels()
	if len(got) != len(want) {
		t.Fatalf("got %d options, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label %d = %q, want %q", i, got[i], want[i])
		}
	}

	v, ok := opts.Lookup("Superdex 75")
	if !ok {
		t.Fatal("lookup failed")
	}
	pair, ok := v.([]any)
	if !ok || len(pair) != 2 || pair[0] != 3.0 || pair[1] != 70.0 {
		t.Fatalf("value = %v, want [3 70]", v)
	}

	if _, ok := opts.Lookup("Sephadex G-25"); ok {
		t.Fatal("lookup of unlisted label must fail")
	}
}

func TestOptionsJSONRoundTrip(t *testing.T) {
	opts := Options{
		{Label: "b", Value: "2"},
		{Label: "a", Value: "1"},
	}
	data, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Options
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 || back[0].Label != "b" || back[1].Label != "a" {
		t.Fatalf("round trip lost order: %+v", back)
	}
}

func TestOptionsRejectsNonObject(t *testing.T) {
	var opts Options
	if err := json.Unmarshal([]byte(`[1,2]`), &opts); err == nil {
		t.Fatal("expected error for non-object options")
	}
}
