package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"
)

var logOut io.Writer = os.Stderr

// Logf writes a formatted message to stderr.  *ir.Node arguments are
// rendered in EDN notation and plain Go maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			d, err := encode.Print(x, encode.EncodeFormat(format.EDNFormat))
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(logOut, msg, args...)
}
