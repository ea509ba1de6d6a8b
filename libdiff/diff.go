package libdiff

import (
	"fmt"
	"strconv"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is one difference between two trees.  From is nil for inserts and
// To is nil for deletes.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	show := func(n *ir.Node) string {
		d, err := encode.Print(n, encode.EncodeFormat(format.EDNFormat))
		if err != nil {
			return fmt.Sprintf("<%v>", err)
		}
		return string(d)
	}
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s %s", c.Path, show(c.To))
	case Delete:
		return fmt.Sprintf("- %s %s", c.Path, show(c.From))
	default:
		return fmt.Sprintf("~ %s %s -> %s", c.Path, show(c.From), show(c.To))
	}
}

// Diff returns the changes which turn from into to, in document order.
func Diff(from, to *ir.Node) []Change {
	return diff(nil, "$", from, to)
}

func diff(dst []Change, path string, from, to *ir.Node) []Change {
	if from.Type != to.Type {
		return append(dst, Change{Path: path, Op: Replace, From: from, To: to})
	}
	switch from.Type {
	case ir.ObjectType, ir.ArrayType:
		return diffValues(dst, path, from, to)
	default:
		if ir.Compare(from, to) != 0 {
			dst = append(dst, Change{Path: path, Op: Replace, From: from, To: to})
		}
		return dst
	}
}

// diffValues aligns the children of two collections of the same type.
func diffValues(dst []Change, path string, from, to *ir.Node) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	isObj := from.Type == ir.ObjectType
	seg := func(n *ir.Node, i int) string {
		if isObj {
			return path + "." + ir.PathField(n.Key)
		}
		return path + "[" + strconv.Itoa(i) + "]"
	}
	fi, ti := 0, 0
	lastDel := -1
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				dst = append(dst, Change{Path: seg(from.Values[fi], fi), Op: Delete, From: from.Values[fi]})
				lastDel = len(dst) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			lastDel = -1
			for range n {
				dst = diff(dst, seg(from.Values[fi], fi), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				// an array element deleted and inserted in place is a
				// replacement.
				if !isObj && lastDel != -1 && lastDel == len(dst)-1 && ti == fi-1 {
					dst[lastDel].Op = Replace
					dst[lastDel].To = to.Values[ti]
				} else {
					dst = append(dst, Change{Path: seg(to.Values[ti], ti), Op: Insert, To: to.Values[ti]})
				}
				lastDel = -1
				ti++
			}
		}
	}
	return dst
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(node.Type, v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				// stay clear of surrogates, which do not survive
				// conversion to string.
				r += 0x800
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr identifies a child for alignment: the key for object members,
// otherwise the type and, for leaves, the printed value.
func summaryStr(parent ir.Type, v *ir.Node) string {
	if parent == ir.ObjectType {
		return v.Key
	}
	switch v.Type {
	case ir.StringType:
		return "s-" + v.String
	case ir.NumberType:
		return "n-" + strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case ir.BoolType:
		return "b-" + strconv.FormatBool(v.Bool)
	default:
		return v.Type.String()
	}
}
