package main

import (
	"bytes"
	"testing"

	"github.com/modric/modric/format"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const testDoc = `{:a [1 2 3] :b "x"}`

func gzipped(t *testing.T, d []byte) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	w := gzip.NewWriter(buf)
	if _, err := w.Write(d); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func zstded(t *testing.T, d []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer enc.Close()
	return enc.EncodeAll(d, nil)
}

func TestReadInput(t *testing.T) {
	plain := []byte(testDoc)
	for _, tc := range []struct {
		name string
		in   []byte
	}{
		{"plain", plain},
		{"gzip", gzipped(t, plain)},
		{"zstd", zstded(t, plain)},
		{"short", []byte("1")},
		{"empty", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readInput(bytes.NewReader(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			want := plain
			switch tc.name {
			case "short":
				want = []byte("1")
			case "empty":
				want = []byte{}
			}
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInFormat(t *testing.T) {
	cfg := &MainConfig{}
	for _, tc := range []struct {
		name string
		want format.Format
	}{
		{"a.json", format.JSONFormat},
		{"a.json.gz", format.JSONFormat},
		{"a.json.zst", format.JSONFormat},
		{"a.edn", format.EDNFormat},
		{"a.yaml", format.EDNFormat},
		{"-", format.EDNFormat},
	} {
		if got := cfg.inFormat(tc.name); got != tc.want {
			t.Errorf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
	cfg.J = true
	if got := cfg.inFormat("a.edn"); got != format.JSONFormat {
		t.Errorf("-j: got %s", got)
	}
}

func TestSplitDocs(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []string
	}{
		{"single", "{:a 3}", []string{"{:a 3}"}},
		{"lf", "1\n---\n[2]\n---\n{:a 3}", []string{"1\n", "[2]\n", "{:a 3}"}},
		{"leading", "---\n1\n---\n2\n", []string{"1\n", "2\n"}},
		{"trailing", "1\n---", []string{"1\n"}},
		{"crlf", "1\r\n---\r\n2\r\n", []string{"1\r\n", "2\r\n"}},
		{"dashes in doc", "\"---\" ---x\n----\n", []string{"\"---\" ---x\n----\n"}},
		{"empty", "", []string{""}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, doc := range splitDocs([]byte(tc.in)) {
				got = append(got, string(doc))
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
