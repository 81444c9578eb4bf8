package lsp

import "github.com/gluax-lang/lsp"

func (h *Handler) InlayHint(p *lsp.InlayHintParams) ([]lsp.InlayHint, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	analysis := h.analyses[p.TextDocument.URI]
	if analysis == nil {
		return nil, nil
	}
	return analysis.InlayHints, nil
}
