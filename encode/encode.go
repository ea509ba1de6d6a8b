package encode

import (
	"fmt"
	"io"

	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/token"
)

type EncState struct {
	depth, indent int
	maxSize       int

	format format.Format

	scratch []byte
	Color   func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:  2,
		maxSize: DefaultMaxSize,
		format:  format.JSONFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Print renders node into newly allocated text.  No trailing newline is
// written.
func Print(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts)
	buf := NewBuffer(es.maxSize)
	if err := es.print(node, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	buf := NewBuffer(es.maxSize)
	if err := es.print(node, buf); err != nil {
		return err
	}
	if err := buf.WriteByte('\n'); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (es *EncState) print(node *ir.Node, buf *Buffer) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch es.format {
	case format.JSONFormat:
		return es.json(node, buf)
	case format.EDNFormat:
		return es.edn(node, buf)
	case format.YAMLFormat:
		return es.yaml(node, buf)
	default:
		return fmt.Errorf("%w: %w %d", ErrEncoding, format.ErrBadFormat, int(es.format))
	}
}

func (es *EncState) write(buf *Buffer, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	_, err := buf.WriteString(s)
	return err
}

// writeBytes is write for text held in es.scratch.
func (es *EncState) writeBytes(buf *Buffer, t ir.Type, a ColorAttr, d []byte) error {
	if es.Color != nil {
		return es.write(buf, t, a, string(d))
	}
	_, err := buf.Write(d)
	return err
}

func (es *EncState) writeQuoted(buf *Buffer, t ir.Type, a ColorAttr, s string) error {
	es.scratch = token.AppendQuote(es.scratch[:0], s)
	return es.writeBytes(buf, t, a, es.scratch)
}

func (es *EncState) writeIndent(buf *Buffer) error {
	return buf.writeSpaces(es.depth * es.indent)
}

// scalar writes the leaf types whose form is shared by JSON and EDN.
func (es *EncState) scalar(node *ir.Node, buf *Buffer) error {
	switch node.Type {
	case ir.NullType:
		return es.write(buf, node.Type, ValueColor, "null")
	case ir.BoolType:
		if node.Bool {
			return es.write(buf, node.Type, ValueColor, "true")
		}
		return es.write(buf, node.Type, ValueColor, "false")
	case ir.NumberType:
		es.scratch = token.AppendNumber(es.scratch[:0], node.Float64, node.Int64)
		return es.writeBytes(buf, node.Type, ValueColor, es.scratch)
	case ir.StringType:
		return es.writeQuoted(buf, node.Type, ValueColor, node.String)
	default:
		return &PrintError{Err: ErrUnknownType, Type: node.Type}
	}
}

func (es *EncState) json(node *ir.Node, buf *Buffer) error {
	var start, end string
	switch node.Type {
	case ir.ArrayType:
		start, end = "[", "]"
	case ir.ObjectType:
		start, end = "{", "}"
	default:
		return es.scalar(node, buf)
	}
	if err := es.write(buf, node.Type, SepColor, start); err != nil {
		return err
	}
	if err := buf.WriteByte('\n'); err != nil {
		return err
	}
	es.depth++
	n := len(node.Values)
	for i, child := range node.Values {
		if err := es.writeIndent(buf); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			if err := es.writeQuoted(buf, node.Type, FieldColor, child.Key); err != nil {
				return err
			}
			if err := es.write(buf, node.Type, SepColor, ":"); err != nil {
				return err
			}
			if err := buf.WriteByte(' '); err != nil {
				return err
			}
		}
		if err := es.json(child, buf); err != nil {
			return err
		}
		if i < n-1 {
			if err := es.write(buf, node.Type, SepColor, ","); err != nil {
				return err
			}
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.writeIndent(buf); err != nil {
		return err
	}
	return es.write(buf, node.Type, SepColor, end)
}

// edn writes node on a single line in the notation Parse reads by default.
func (es *EncState) edn(node *ir.Node, buf *Buffer) error {
	var start, end string
	switch node.Type {
	case ir.ArrayType:
		start, end = "[", "]"
	case ir.ObjectType:
		start, end = "{", "}"
	case ir.StringType:
		if node.Keyword && token.KeywordSafe(node.String) {
			return es.write(buf, node.Type, KeywordColor, ":"+node.String)
		}
		return es.scalar(node, buf)
	default:
		return es.scalar(node, buf)
	}
	if err := es.write(buf, node.Type, SepColor, start); err != nil {
		return err
	}
	for i, child := range node.Values {
		if i > 0 {
			if err := buf.WriteByte(' '); err != nil {
				return err
			}
		}
		if node.Type == ir.ObjectType {
			if err := es.ednKey(child.Key, buf); err != nil {
				return err
			}
			if err := buf.WriteByte(' '); err != nil {
				return err
			}
		}
		if err := es.edn(child, buf); err != nil {
			return err
		}
	}
	return es.write(buf, node.Type, SepColor, end)
}

func (es *EncState) ednKey(key string, buf *Buffer) error {
	if token.KeywordSafe(key) {
		return es.write(buf, ir.ObjectType, FieldColor, ":"+key)
	}
	return es.writeQuoted(buf, ir.ObjectType, FieldColor, key)
}
