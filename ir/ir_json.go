package ir

import (
	"encoding/json"
	"math"
)

type irBase struct {
	Type    Type    `json:"type"`
	Key     string  `json:"key,omitempty"`
	Keyword bool    `json:"keyword,omitempty"`
	Values  []*Node `json:"values,omitempty"`
}

// MarshalJSON renders the node structure itself rather than the value it
// represents; it is used for debugging dumps.
func (y *Node) MarshalJSON() ([]byte, error) {
	base := irBase{
		Type:    y.Type,
		Key:     y.Key,
		Keyword: y.Keyword,
		Values:  y.Values,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: base, Bool: y.Bool})
	case NumberType:
		type C struct {
			irBase
			Float64 *float64 `json:"float,omitempty"`
			Int64   int64    `json:"int"`
		}
		c := C{irBase: base, Int64: y.Int64}
		// encoding/json rejects NaN and Inf
		if !math.IsNaN(y.Float64) && !math.IsInf(y.Float64, 0) {
			c.Float64 = &y.Float64
		}
		return json.Marshal(c)
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String  string   `json:"string"`
		Bool    bool     `json:"bool"`
		Float64 *float64 `json:"float"`
		Int64   int64    `json:"int"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Key = tmp.Key
	y.Keyword = tmp.Keyword
	y.Values = tmp.Values
	y.String = tmp.String
	y.Bool = tmp.Bool
	y.Int64 = tmp.Int64
	if tmp.Float64 != nil {
		y.Float64 = *tmp.Float64
	} else {
		y.Float64 = float64(tmp.Int64)
	}
	return nil
}
