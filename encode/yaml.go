package encode

import (
	"bytes"
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/modric/modric/ir"
)

// yaml renders node through go-yaml.  Object members keep their order.
func (es *EncState) yaml(node *ir.Node, buf *Buffer) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(max(es.indent, 1)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = buf.Write(bytes.TrimRight(d, "\n"))
	return err
}

func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.IsIntegral() {
			return node.Int64, nil
		}
		if math.IsNaN(node.Float64) || math.IsInf(node.Float64, 0) {
			return nil, nil
		}
		return node.Float64, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, child := range node.Values {
			v, err := toYAML(child)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Values))
		for i, child := range node.Values {
			v, err := toYAML(child)
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: child.Key, Value: v}
		}
		return res, nil
	default:
		return nil, &PrintError{Err: ErrUnknownType, Type: node.Type}
	}
}
