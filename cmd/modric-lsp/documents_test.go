package main

import (
	"strings"
	"testing"

	"github.com/modric/modric/ir"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestDiagnostics(t *testing.T) {
	doc := newDocument("file:///a.edn", "{:a 1\n :b [1 2}", 1)
	diags := doc.diagnostics()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	d := diags[0]
	if d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity %v", d.Severity)
	}
	want := protocol.Position{Line: 1, Character: 8}
	if diff := cmp.Diff(want, d.Range.Start); diff != "" {
		t.Errorf("start (-want +got):\n%s", diff)
	}
}

func TestDuplicateKeys(t *testing.T) {
	doc := newDocument("file:///a.edn", "{:a 1 :a 2}", 1)
	diags := doc.diagnostics()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	if diags[0].Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("severity %v", diags[0].Severity)
	}
	if got := diags[0].Range.Start.Character; got != 9 {
		t.Errorf("got character %d", got)
	}
}

func TestJSONByName(t *testing.T) {
	doc := newDocument("file:///a.json", `{"a": [1, 2]}`, 1)
	if doc.err != nil {
		t.Fatal(doc.err)
	}
	doc = newDocument("file:///a.edn", `{"a": [1, 2]}`, 1)
	if doc.err == nil {
		t.Fatal("expected edn parse error")
	}
}

func TestPositionUTF16(t *testing.T) {
	content := "{:a \"\U0001F600é\"\n :b 2}"
	doc := newDocument("file:///a.edn", content, 1)
	off := strings.Index(content, ":b")
	p := doc.position(off)
	if diff := cmp.Diff(protocol.Position{Line: 1, Character: 1}, p); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := doc.offset(p); got != off {
		t.Errorf("round trip got %d want %d", got, off)
	}
	end := strings.Index(content, "\"\n")
	p = doc.position(end)
	// emoji is two units, é is one
	if p.Character != 8 {
		t.Errorf("got character %d", p.Character)
	}
	if got := doc.offset(p); got != end {
		t.Errorf("round trip got %d want %d", got, end)
	}
}

func TestNodeAt(t *testing.T) {
	content := "{:a [1 {:b true}]\n :c \"x\"}"
	doc := newDocument("file:///a.edn", content, 1)
	for _, tc := range []struct {
		at   string
		typ  ir.Type
		path string
	}{
		{"true", ir.BoolType, "$.a[1].b"},
		{"1 ", ir.NumberType, "$.a[0]"},
		{"\"x\"", ir.StringType, "$.c"},
		{"{:a", ir.ObjectType, "$"},
	} {
		node, path := doc.nodeAt(strings.Index(content, tc.at))
		if node == nil {
			t.Errorf("%q: no node", tc.at)
			continue
		}
		if node.Type != tc.typ || path != tc.path {
			t.Errorf("%q: got %s %s", tc.at, node.Type, path)
		}
	}
}

func TestHoverText(t *testing.T) {
	doc := newDocument("file:///a.edn", "[1 2]", 1)
	got := hoverText(doc.node, "$")
	if !strings.HasPrefix(got, "**array** `$` (2 elements)") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "```json\n[\n  1,\n  2\n]\n```") {
		t.Errorf("got %q", got)
	}
}

func TestCompletions(t *testing.T) {
	content := "{:alpha 1 :beta {:alps 2}}\n:al"
	doc := newDocument("file:///a.edn", content, 1)
	// trailing text fails the parse so no keys are known
	if items := doc.completions(len(content)); len(items) != 0 {
		t.Errorf("got %v", items)
	}
	content = "{:alpha 1 :beta {:alps 2} :x :al}"
	doc = newDocument("file:///a.edn", content, 1)
	items := doc.completions(strings.LastIndex(content, "}"))
	var labels []string
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	if diff := cmp.Diff([]string{":alpha", ":alps"}, labels); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	items = doc.completions(0)
	if len(items) != 3 {
		t.Errorf("got %d literal items", len(items))
	}
}

func TestFormatted(t *testing.T) {
	doc := newDocument("file:///a.edn", "{ :a   [1  2] }", 1)
	got, err := doc.formatted(4)
	if err != nil {
		t.Fatal(err)
	}
	if got != "{:a [1 2]}\n" {
		t.Errorf("got %q", got)
	}
	doc = newDocument("file:///a.json", `{"a":[1]}`, 1)
	got, err = doc.formatted(4)
	if err != nil {
		t.Fatal(err)
	}
	if got != "{\n    \"a\": [\n        1\n    ]\n}\n" {
		t.Errorf("got %q", got)
	}
}
