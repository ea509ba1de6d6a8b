package format

import "testing"

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		for _, v := range []string{f.String(), f.String()[:1]} {
			got, err := ParseFormat(v)
			if err != nil {
				t.Errorf("%s: %v", v, err)
				continue
			}
			if got != f {
				t.Errorf("%s: got %s", v, got)
			}
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("expected error")
	}
	if s := Format(9).String(); s != "<err: 9 is not a format>" {
		t.Errorf("got %q", s)
	}
}

func TestFromSuffix(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Format
		ok   bool
	}{
		{"a.edn", EDNFormat, true},
		{"dir.json/a.json", JSONFormat, true},
		{"file:///x/a.yml", YAMLFormat, true},
		{"a.yaml", YAMLFormat, true},
		{"a.txt", 0, false},
		{"json", 0, false},
	} {
		got, ok := FromSuffix(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s: got %s %v", tc.name, got, ok)
		}
	}
}

func TestParseable(t *testing.T) {
	if !EDNFormat.Parseable() || !JSONFormat.Parseable() {
		t.Error("edn and json must be parseable")
	}
	if YAMLFormat.Parseable() || Format(-1).Parseable() {
		t.Error("yaml is output only")
	}
}
