// Package debug holds environment controlled debug switches.
//
// Each switch is read once at start up from a MODRIC_DEBUG_* variable
// holding a value accepted by strconv.ParseBool.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Eval  bool
	Patch bool
	KV    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("MODRIC_DEBUG_PARSE")
	d.Eval = boolEnv("MODRIC_DEBUG_EVAL")
	d.Patch = boolEnv("MODRIC_DEBUG_PATCH")
	d.KV = boolEnv("MODRIC_DEBUG_KV")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func KV() bool {
	return d.KV
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
