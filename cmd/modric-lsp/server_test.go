package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

var _ protocol.Server = (*Server)(nil)

func TestInitialize(t *testing.T) {
	res, err := newServer().Initialize(context.Background(), &protocol.InitializeParams{})
	if err != nil {
		t.Fatal(err)
	}
	caps := res.Capabilities
	sync, ok := caps.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	if !ok {
		t.Fatalf("sync options %T", caps.TextDocumentSync)
	}
	if sync.Change != protocol.TextDocumentSyncKindFull {
		t.Errorf("change kind %v", sync.Change)
	}
	if caps.CompletionProvider == nil || res.ServerInfo.Name != lsName {
		t.Errorf("got %+v", res)
	}
}

type failConn struct {
	jsonrpc2.Conn
	methods []string
}

func (c *failConn) Notify(_ context.Context, method string, _ interface{}) error {
	c.methods = append(c.methods, method)
	return errors.New("broken pipe")
}

func TestNotifyErrorLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	conn := &failConn{}
	s := newServer()
	s.conn = conn
	s.log = newLogger(buf)
	ctx := context.Background()
	doc := protocol.TextDocumentItem{URI: "file:///a.edn", Text: "{:a 1}", Version: 1}
	if err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{TextDocument: doc}); err != nil {
		t.Fatal(err)
	}
	if err := s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: doc.URI},
	}); err != nil {
		t.Fatal(err)
	}
	if len(conn.methods) != 2 {
		t.Fatalf("got %d notifications", len(conn.methods))
	}
	out := buf.String()
	if strings.Count(out, "broken pipe") != 2 || !strings.Contains(out, "uri=file:///a.edn") {
		t.Errorf("log output:\n%s", out)
	}
}
