package main

import (
	"context"

	"github.com/modric/modric/encode"
	"github.com/modric/modric/format"
	"go.lsp.dev/protocol"
)

// Formatting rewrites the whole document.  EDN documents are printed on a
// single line; JSON documents are pretty printed.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	formatted, err := doc.formatted(int(params.Options.TabSize))
	if err != nil {
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   doc.position(len(doc.content)),
			},
			NewText: formatted,
		},
	}, nil
}

func (d *document) formatted(tabSize int) (string, error) {
	opts := []encode.EncodeOption{encode.EncodeFormat(d.format)}
	if d.format == format.JSONFormat && tabSize > 0 {
		opts = append(opts, encode.Indent(tabSize))
	}
	out, err := encode.Print(d.node, opts...)
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
