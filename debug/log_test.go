package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/modric/modric/ir"
)

func TestLogfNode(t *testing.T) {
	buf := &bytes.Buffer{}
	logOut = buf
	defer func() { logOut = os.Stderr }()

	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x")})},
	})
	var nilNode *ir.Node
	Logf("parsed %v %v\n", node, nilNode)
	if got, want := buf.String(), "parsed {:a [1 \"x\"]} <nil>\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestLogfAny(t *testing.T) {
	buf := &bytes.Buffer{}
	logOut = buf
	defer func() { logOut = os.Stderr }()

	Logf("%v %d\n", []any{"a"}, 3)
	if got, want := buf.String(), "[\n   |  \"a\"\n   |] 3\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
