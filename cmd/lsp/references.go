package lsp

import "github.com/gluax-lang/lsp"

func (h *Handler) References(p *lsp.ReferenceParams) ([]lsp.Location, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := p.TextDocument.URI
	analysis := h.analyses[uri]
	if analysis == nil {
		return nil, nil
	}

	sym := analysis.SymbolAt(p.Position)
	if sym == nil {
		return nil, nil
	}

	var locations []lsp.Location
	if p.Context.IncludeDeclaration {
		locations = append(locations, toLocation(uri, sym.Span))
	}
	for _, ref := range sym.Refs {
		locations = append(locations, toLocation(uri, ref))
	}
	return locations, nil
}
