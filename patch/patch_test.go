package patch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/parse"
)

func TestApply(t *testing.T) {
	tests := []struct {
		doc, patch, want string
	}{
		{
			doc:   `{:a 1 :b [1 2]}`,
			patch: `[{:op "replace" :path "/a" :value 5}]`,
			want:  `{:a 5 :b [1 2]}`,
		},
		{
			doc:   `{:a 1 :b [1 2]}`,
			patch: `[{:op "add" :path "/b/-" :value {:c "x"}} {:op "remove" :path "/a"}]`,
			want:  `{:b [1 2 {:c "x"}]}`,
		},
		{
			doc:   `[1 2 3]`,
			patch: `[{:op "move" :from "/0" :path "/2"}]`,
			want:  `[2 3 1]`,
		},
		{
			doc:   `{:z 1 :a 2}`,
			patch: `[{:op "copy" :from "/z" :path "/m"}]`,
			want:  `{:a 2 :m 1 :z 1}`,
		},
	}
	for i, tc := range tests {
		doc := mustParse(t, tc.doc)
		p := mustParse(t, tc.patch)
		want := mustParse(t, tc.want)
		got, err := Apply(doc, p)
		if err != nil {
			t.Errorf("[%d] %v", i, err)
			continue
		}
		if !ir.Equal(want, got) {
			t.Errorf("[%d] got %v want %v", i, ir.ToAny(got), ir.ToAny(want))
		}
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustParse(t, `{:a 1}`)
	for _, p := range []string{
		`{:op "add"}`,
		`[{:op "replace" :path "/nope/x" :value 1}]`,
		`[{:op "test" :path "/a" :value 2}]`,
		`[{:op "bogus" :path "/a"}]`,
	} {
		if _, err := Apply(doc, mustParse(t, p)); err == nil {
			t.Errorf("%s: expected error", p)
		}
	}
}

func TestDecodeLen(t *testing.T) {
	p, err := Decode(mustParse(t, `[{:op "test" :path "/a" :value 1} {:op "remove" :path "/a"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 2 {
		t.Errorf("len %d", p.Len())
	}
	got, err := p.Apply(mustParse(t, `{:a 1 :b 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b"}, got.Keys()); diff != "" {
		t.Error(diff)
	}
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return node
}
