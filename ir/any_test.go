package ir

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "i", Val: FromInt(3)},
		{Key: "f", Val: FromFloat(2.5)},
		{Key: "s", Val: FromKeyword("kw")},
		{Key: "l", Val: FromSlice([]*Node{FromBool(true), Null()})},
		{Key: "i", Val: FromInt(4)},
	})
	want := map[string]any{
		"i": 3,
		"f": 2.5,
		"s": "kw",
		"l": []any{true, nil},
	}
	if diff := cmp.Diff(want, ToAny(doc)); diff != "" {
		t.Error(diff)
	}
}

func TestFromAny(t *testing.T) {
	in := map[string]any{
		"b": []any{1, 2.5, "x"},
		"a": nil,
	}
	got, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{
		{Key: "a", Val: Null()},
		{Key: "b", Val: FromSlice([]*Node{FromInt(1), FromFloat(2.5), FromString("x")})},
	})
	if !Equal(want, got) {
		t.Errorf("got %v", ToAny(got))
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("expected error for struct")
	}
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "n", Val: FromFloat(1.5)},
		{Key: "k", Val: FromKeyword("x")},
		{Key: "b", Val: FromBool(true)},
	})
	d, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	got := &Node{}
	if err := json.Unmarshal(d, got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Error(diff)
	}
}
