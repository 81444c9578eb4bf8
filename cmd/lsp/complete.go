package lsp

import (
	"sort"

	"github.com/dnalang/dnalang/frontend/lexer"
	"github.com/dnalang/dnalang/frontend/sema"
	"github.com/gluax-lang/lsp"
)

// quantum operations complete as methods, every other reserved word as a
// field of the enclosing block.
var opKeywords = map[string]bool{
	"superpose": true,
	"entangle":  true,
	"measure":   true,
	"apply":     true,
	"evolve":    true,
}

func (h *Handler) Complete(p *lsp.CompletionParams) (*lsp.CompletionList, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return &lsp.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(h.analyses[p.TextDocument.URI]),
	}, nil
}

func completionItems(analysis *sema.Analysis) []lsp.CompletionItem {
	keywords := lexer.Keywords()
	sort.Strings(keywords)

	var list []lsp.CompletionItem
	for _, kw := range keywords {
		kind := lsp.CompletionItemKindField
		if opKeywords[kw] {
			kind = lsp.CompletionItemKindMethod
		}
		list = append(list, lsp.CompletionItem{
			Label: kw,
			Kind:  kind,
		})
	}

	if analysis == nil {
		return list
	}

	added := make(map[string]struct{})
	for _, sym := range analysis.Symbols {
		if _, exists := added[sym.Name]; exists {
			continue
		}
		added[sym.Name] = struct{}{}
		list = append(list, lsp.CompletionItem{
			Label:  sym.Name,
			Kind:   lsp.CompletionItemKindVariable,
			Detail: sym.LSPString(),
		})
	}
	return list
}
