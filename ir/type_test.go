package ir

import "testing"

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Type
		if err := got.UnmarshalText(d); err != nil {
			t.Errorf("%s: %v", d, err)
			continue
		}
		if got != typ {
			t.Errorf("%s: got %s", d, got)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Tuple")); err == nil {
		t.Error("expected error for unknown type")
	}
}
