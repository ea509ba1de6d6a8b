package main

import (
	"context"
	"sort"
	"strings"

	"github.com/modric/modric/ir"
	"github.com/modric/modric/token"
	"go.lsp.dev/protocol"
)

var literals = []string{"null", "true", "false"}

// Completion offers the literal names and, after a ':', the keywords
// already used as keys elsewhere in the document.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{
		Items: doc.completions(doc.offset(params.Position)),
	}, nil
}

func (d *document) completions(off int) []protocol.CompletionItem {
	line := d.lineText(off)
	word := line[strings.LastIndexAny(line, " \t[{,")+1:]
	items := []protocol.CompletionItem{}
	if strings.HasPrefix(word, ":") && d.format.IsEDN() {
		for _, k := range d.keywords() {
			if !strings.HasPrefix(k, word[1:]) {
				continue
			}
			items = append(items, protocol.CompletionItem{
				Label:  ":" + k,
				Kind:   protocol.CompletionItemKindField,
				Detail: "keyword",
			})
		}
		return items
	}
	for _, lit := range literals {
		if strings.HasPrefix(lit, word) {
			items = append(items, protocol.CompletionItem{
				Label: lit,
				Kind:  protocol.CompletionItemKindConstant,
			})
		}
	}
	return items
}

// keywords collects the distinct object keys of the document which can be
// written as keywords.  A document which does not parse contributes none.
func (d *document) keywords() []string {
	if d.node == nil {
		return nil
	}
	seen := map[string]bool{}
	var res []string
	d.node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.ObjectType {
			return true, nil
		}
		for _, k := range y.Keys() {
			if seen[k] || !token.KeywordSafe(k) {
				continue
			}
			seen[k] = true
			res = append(res, k)
		}
		return true, nil
	})
	sort.Strings(res)
	return res
}
