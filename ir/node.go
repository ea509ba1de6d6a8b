package ir

import (
	"math"
)

// Node is one value of a document tree.  Type selects which of the payload
// fields are meaningful.
//
// Array and Object children are held in Values in source order.  Object
// children carry their key in Key; keys need not be unique.
type Node struct {
	Type   Type
	Key    string
	Values []*Node

	// Keyword is set on strings which were written in :keyword form.
	Keyword bool

	String  string
	Bool    bool
	Float64 float64
	// Int64 is Float64 truncated and saturated to the int64 range.
	Int64 int64
}

// Saturate converts f to an int64, clamping at the int64 bounds instead of
// overflowing.  NaN maps to 0.
func Saturate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

func (y *Node) WithKey(key string) *Node {
	y.Key = key
	return y
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	*dst = *y
	if y.Values == nil {
		return dst
	}
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dst.Values[i] = yv.Clone()
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: f,
		Int64:   Saturate(f),
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: float64(v),
		Int64:   v,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromKeyword(v string) *Node {
	return &Node{
		Type:    StringType,
		String:  v,
		Keyword: true,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object whose members appear in the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		kv := &kvs[i]
		if kv.Val == nil {
			kv.Val = Null()
		}
		res.Values[i] = kv.Val.WithKey(kv.Key)
	}
	return res
}

// Get returns the value of the first member of y with the given key, or
// nil.
func Get(y *Node, key string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for _, v := range y.Values {
		if v.Key == key {
			return v
		}
	}
	return nil
}

// Keys returns the member keys of an object in order.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]string, len(y.Values))
	for i, v := range y.Values {
		res[i] = v.Key
	}
	return res
}

// IsIntegral reports whether the number is exactly its integer alias.
// Values which saturated at the int64 maximum are never integral as
// that bound is not representable as a float64.
func (y *Node) IsIntegral() bool {
	return y.Type == NumberType && y.Int64 < math.MaxInt64 && y.Float64 == float64(y.Int64)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
