package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/parse"
	"github.com/modric/modric/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	format  format.Format

	// node is nil when err is set.
	node      *ir.Node
	err       error
	pd        *token.PosDoc
	positions map[*ir.Node]*token.Pos
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		format:    format.EDNFormat,
		pd:        token.NewPosDoc([]byte(content)),
		positions: make(map[*ir.Node]*token.Pos),
	}
	if f, ok := format.FromSuffix(uri); ok && f.Parseable() {
		doc.format = f
	}
	doc.node, doc.err = parse.ParseString(content,
		parse.ParseFormat(doc.format),
		parse.RequireEnd(),
		parse.ParsePositions(doc.positions))
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// offset converts an editor position, whose character counts UTF-16 code
// units, into a byte offset of the content.
func (d *document) offset(p protocol.Position) int {
	i := d.pd.Offset(int(p.Line), 0)
	units := int(p.Character)
	for i < len(d.content) && units > 0 {
		r, n := utf8.DecodeRuneInString(d.content[i:])
		if r == '\n' {
			break
		}
		units -= utf16.RuneLen(r)
		i += n
	}
	return i
}

// position is the inverse of offset.
func (d *document) position(off int) protocol.Position {
	off = min(max(off, 0), len(d.content))
	line, col := d.pd.LineCol(off)
	units := 0
	for _, r := range d.content[off-col : off] {
		units += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(units)}
}

func (d *document) rangeAt(off, n int) protocol.Range {
	return protocol.Range{
		Start: d.position(off),
		End:   d.position(off + n),
	}
}

func (d *document) diagnostics() []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if d.err != nil {
		diag := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  d.err.Error(),
			Source:   lsName,
		}
		var pe *token.ParseError
		if errors.As(d.err, &pe) {
			diag.Range = d.rangeAt(pe.Offset(), 1)
			diag.Message = pe.Err.Error()
		}
		return append(res, diag)
	}
	d.node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.ObjectType {
			return true, nil
		}
		seen := make(map[string]bool, len(y.Values))
		for _, v := range y.Values {
			if !seen[v.Key] {
				seen[v.Key] = true
				continue
			}
			diag := protocol.Diagnostic{
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  fmt.Sprintf("duplicate key %q, only the first is used by lookups", v.Key),
				Source:   lsName,
			}
			if pos := d.positions[v]; pos != nil {
				diag.Range = d.rangeAt(pos.I, 1)
			}
			res = append(res, diag)
		}
		return true, nil
	})
	return res
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil || s.conn == nil {
		return
	}
	s.notifyDiagnostics(ctx, protocol.DocumentURI(uri), doc.diagnostics())
}

func (s *Server) notifyDiagnostics(ctx context.Context, uri protocol.DocumentURI, diags []protocol.Diagnostic) {
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
	if err != nil {
		s.log.Error("publish diagnostics", "uri", uri, "err", err)
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// DidChange expects whole document updates; see Initialize.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	if s.conn != nil {
		// clear what the editor shows for the closed file
		s.notifyDiagnostics(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	}
	return nil
}

// lineText returns the text of line up to byte offset off.
func (d *document) lineText(off int) string {
	start := strings.LastIndexByte(d.content[:off], '\n') + 1
	return d.content[start:off]
}
