package libdiff

import (
	"bufio"
	"io"
	"strings"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs two texts line by line.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(a, b, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Nodes prints both trees with opts and diffs the text.
func Nodes(from, to *ir.Node, opts ...encode.EncodeOption) ([]diffpatch.Diff, error) {
	a, err := encode.Print(from, opts...)
	if err != nil {
		return nil, err
	}
	b, err := encode.Print(to, opts...)
	if err != nil {
		return nil, err
	}
	return Lines(string(a)+"\n", string(b)+"\n"), nil
}

// Changed reports whether diffs contains anything but equal text.
func Changed(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// WriteLines writes diffs with one line per row, prefixed by "-", "+" or a
// space.
func WriteLines(w io.Writer, diffs []diffpatch.Diff) error {
	bw := bufio.NewWriter(w)
	for i := range diffs {
		d := &diffs[i]
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text == "" {
			continue
		}
		for _, ln := range strings.Split(text, "\n") {
			bw.WriteString(prefix)
			bw.WriteString(ln)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
