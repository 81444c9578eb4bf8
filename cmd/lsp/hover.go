package lsp

import (
	"fmt"

	"github.com/gluax-lang/lsp"
)

func (h *Handler) Hover(p *lsp.HoverParams) (*lsp.Hover, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	analysis := h.analyses[p.TextDocument.URI]
	if analysis == nil {
		return nil, nil
	}

	sym := analysis.SymbolAt(p.Position)
	if sym == nil {
		return nil, nil
	}

	content := fmt.Sprintf("```dna\n%s\n```\n", sym.LSPString())

	return &lsp.Hover{
		Contents: lsp.MarkupContent{
			Kind:  "markdown",
			Value: content,
		},
	}, nil
}
