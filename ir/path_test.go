package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDoc() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("top")},
		{Key: "items", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "name", Val: FromString("a")}}),
			FromKeyVals([]KeyVal{{Key: "name", Val: FromString("b")}}),
		})},
		{Key: "a.b", Val: FromInt(7)},
	})
}

func TestParsePathString(t *testing.T) {
	for _, p := range []string{"$", "$.a", "$.a[1]", "$[*].x", "$..name", "$.'a.b'", "$..[0]", "$.items[*]..name", `$.'it\'s'`} {
		yp, err := ParsePath(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if got := yp.String(); got != p {
			t.Errorf("%s round tripped to %s", p, got)
		}
	}
	for _, p := range []string{"", "a", "$.a[", "$x", "$.'a", "$..", "$.", "$[x]", "$[-1]", "$.a.[0]"} {
		if _, err := ParsePath(p); !errors.Is(err, ErrPath) {
			t.Errorf("%q: got %v, want ErrPath", p, err)
		}
	}
}

func TestParsePathSteps(t *testing.T) {
	got, err := ParsePath("$.a..b[2][*]")
	if err != nil {
		t.Fatal(err)
	}
	want := Path{
		{Kind: FieldStep, Field: "a"},
		{Kind: DescendStep},
		{Kind: FieldStep, Field: "b"},
		{Kind: IndexStep, Index: 2},
		{Kind: AllStep},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestGetPath(t *testing.T) {
	doc := testDoc()
	tests := []struct {
		path string
		want string
	}{
		{"$.name", "top"},
		{"$.items[1].name", "b"},
	}
	for _, tc := range tests {
		got, err := doc.GetPath(tc.path)
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if got == nil || got.String != tc.want {
			t.Errorf("%s: got %v want %s", tc.path, got, tc.want)
		}
	}
	got, err := doc.GetPath("$.'a.b'")
	if err != nil || got == nil || got.Int64 != 7 {
		t.Errorf("quoted field: %v %v", got, err)
	}
	got, err = doc.GetPath("$.missing")
	if err != nil || got != nil {
		t.Errorf("missing: %v %v", got, err)
	}
	if _, err := doc.GetPath("$.items[5]"); err == nil {
		t.Error("expected out of bounds error")
	}
	if _, err := doc.GetPath("$.name[0]"); err == nil {
		t.Error("expected type error")
	}
	for _, p := range []string{"$.items[*]", "$..name"} {
		if _, err := doc.GetPath(p); err == nil {
			t.Errorf("%s: expected error", p)
		}
	}
}

func TestListPath(t *testing.T) {
	doc := testDoc()
	res, err := doc.ListPath(nil, "$..name")
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 3 {
		t.Fatalf("got %d results, want 3", len(res))
	}
	res, err = doc.ListPath(nil, "$.items[*].name")
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || res[0].String != "a" || res[1].String != "b" {
		t.Errorf("got %v", res)
	}
}
	res, err = doc.ListPath(nil, "$..[1]")
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || Get(res[0], "name").String != "b" {
		t.Errorf("descend index: got %v", res)
	}
	res, err = doc.ListPath(nil, "$.name[0]")
	if err != nil || len(res) != 0 {
		t.Errorf("mismatched step: %v %v", res, err)
	}
}

func TestPathField(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a.b", "'a.b'"},
		{"it's", `'it\'s'`},
		{"", "''"},
	}
	for _, tc := range tests {
		if got := PathField(tc.in); got != tc.want {
			t.Errorf("%q: got %s want %s", tc.in, got, tc.want)
		}
	}
}
