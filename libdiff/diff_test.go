package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return node
}

func TestDiff(t *testing.T) {
	tests := []struct {
		from, to string
		want     []string
	}{
		{`{:a 1}`, `{:a 1}`, nil},
		{`1`, `"1"`, []string{`~ $ 1 -> "1"`}},
		{`{:a 1 :b 2}`, `{:a 1 :b 3}`, []string{`~ $.b 2 -> 3`}},
		{`{:a 1 :b 2}`, `{:a 1}`, []string{`- $.b 2`}},
		{`{:a 1}`, `{:a 1 :c [true]}`, []string{`+ $.c [true]`}},
		{`[1 2 3]`, `[1 5 3]`, []string{`~ $[1] 2 -> 5`}},
		{`[1 2 3]`, `[1 3]`, []string{`- $[1] 2`}},
		{`[1 3]`, `[1 2 3]`, []string{`+ $[1] 2`}},
		{`{:x [{:n 1}]}`, `{:x [{:n 2}]}`, []string{`~ $.x[0].n 1 -> 2`}},
		{`{"a.b" 1}`, `{"a.b" 2}`, []string{`~ $.'a.b' 1 -> 2`}},
	}
	for _, tc := range tests {
		changes := Diff(mustParse(t, tc.from), mustParse(t, tc.to))
		var got []string
		for i := range changes {
			got = append(got, changes[i].String())
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s -> %s:\n%s", tc.from, tc.to, diff)
		}
	}
}

func TestLines(t *testing.T) {
	diffs := Lines("a\nb\nc\n", "a\nx\nc\n")
	if !Changed(diffs) {
		t.Fatal("expected change")
	}
	buf := bytes.NewBuffer(nil)
	if err := WriteLines(buf, diffs); err != nil {
		t.Fatal(err)
	}
	want := " a\n-b\n+x\n c\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if Changed(Lines("same\n", "same\n")) {
		t.Error("unexpected change")
	}
}

func TestNodes(t *testing.T) {
	diffs, err := Nodes(mustParse(t, `{:a 1 :b 2}`), mustParse(t, `{:a 1 :b 3}`))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := WriteLines(buf, diffs); err != nil {
		t.Fatal(err)
	}
	want := " {\n   \"a\": 1,\n-  \"b\": 2\n+  \"b\": 3\n }\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
