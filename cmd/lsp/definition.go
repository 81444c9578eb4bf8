package lsp

import (
	"github.com/dnalang/dnalang/frontend/sema"
	"github.com/gluax-lang/lsp"
)

func (h *Handler) Definition(p *lsp.DefinitionParams) ([]lsp.Location, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := p.TextDocument.URI
	analysis := h.analyses[uri]
	if analysis == nil {
		return nil, nil
	}

	symbol := analysis.SymbolAt(p.Position)
	if symbol == nil {
		return nil, nil
	}
	return []lsp.Location{toLocation(uri, symbol.Span)}, nil
}

func toLocation(uri string, span sema.Span) lsp.Location {
	return lsp.Location{
		URI:   uri,
		Range: span.ToRange(),
	}
}
