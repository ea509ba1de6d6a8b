package parse

import (
	"testing"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Primitives
		`null`,
		`true`,
		`false`,
		`42`,
		`3.14`,
		`-1e10`,
		`1e400`,
		`""`,
		`"hello"`,
		`:kw`,

		// Arrays
		`[]`,
		`[1 2 3]`,
		`[:a :b :c]`,
		`[[nested] [arrays]]`,

		// Objects
		`{}`,
		`{:foo :bar}`,
		`{:a 1 :b 2}`,
		`{:nested {:object "value"}}`,
		`{"quoted key" 1}`,

		// Mixed
		`{:users [{:name "alice"} {:name "bob"}]}`,

		// Strings with escapes
		`"with\nnewline"`,
		`"with\ttab"`,
		`"with \"quotes\""`,
		`"😀"`,
		`"\u0001"`,

		// Errors
		`{:a}`,
		`["a""b"]`,
		`[[[[`,
		`"\ud800"`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(data)
		if err != nil {
			return
		}
		d, err := encode.Print(node)
		if err != nil {
			t.Fatalf("print: %v", err)
		}
		if _, err := Parse(d, ParseJSON()); err != nil {
			t.Fatalf("reparse %q: %v", d, err)
		}
		e, err := encode.Print(node, encode.EncodeFormat(format.EDNFormat))
		if err != nil {
			t.Fatalf("print edn: %v", err)
		}
		if _, err := Parse(e); err != nil {
			t.Fatalf("reparse edn %q: %v", e, err)
		}
	})
}
