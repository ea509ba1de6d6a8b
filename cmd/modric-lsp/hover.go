package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"
	"go.lsp.dev/protocol"
)

const hoverPreviewMax = 400

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	node, path := doc.nodeAt(doc.offset(params.Position))
	if node == nil {
		return nil, nil
	}
	rng := doc.rangeAt(doc.positions[node].I, 1)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(node, path),
		},
		Range: &rng,
	}, nil
}

// nodeAt finds the node starting closest before off, preferring the
// deepest one, along with its path from the root.
func (d *document) nodeAt(off int) (*ir.Node, string) {
	var (
		best     *ir.Node
		bestPath string
		bestOff  = -1
	)
	var visit func(y *ir.Node, path string)
	visit = func(y *ir.Node, path string) {
		pos := d.positions[y]
		if pos == nil || pos.I > off {
			return
		}
		if pos.I >= bestOff {
			best, bestPath, bestOff = y, path, pos.I
		}
		for i, child := range y.Values {
			switch y.Type {
			case ir.ObjectType:
				visit(child, path+"."+ir.PathField(child.Key))
			default:
				visit(child, path+"["+strconv.Itoa(i)+"]")
			}
		}
	}
	visit(d.node, "$")
	return best, bestPath
}

func hoverText(y *ir.Node, path string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "**%s** `%s`", strings.ToLower(y.Type.String()), path)
	switch y.Type {
	case ir.ArrayType:
		fmt.Fprintf(b, " (%d elements)", len(y.Values))
	case ir.ObjectType:
		fmt.Fprintf(b, " (%d keys)", len(y.Values))
	}
	preview, err := encode.Print(y, encode.EncodeFormat(format.JSONFormat))
	if err != nil {
		return b.String()
	}
	if len(preview) > hoverPreviewMax {
		preview = append(preview[:hoverPreviewMax:hoverPreviewMax], "\n..."...)
	}
	fmt.Fprintf(b, "\n\n```json\n%s\n```", preview)
	return b.String()
}
