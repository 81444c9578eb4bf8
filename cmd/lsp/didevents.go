package lsp

import "github.com/gluax-lang/lsp"

func (h *Handler) DidOpen(p *lsp.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	uri := p.TextDocument.URI
	h.handleDiagnostics(uri, h.analyze(uri, p.TextDocument.Text))
	return nil
}

func (h *Handler) DidChange(p *lsp.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(p.ContentChanges) == 0 {
		return nil
	}
	uri := p.TextDocument.URI
	text := p.ContentChanges[len(p.ContentChanges)-1].Text
	h.handleDiagnostics(uri, h.analyze(uri, text))
	return nil
}

func (h *Handler) DidClose(p *lsp.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	uri := p.TextDocument.URI
	delete(h.fileCache, uri)
	delete(h.analyses, uri)
	return nil
}

func (h *Handler) DidSave(p *lsp.DidSaveTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if p.Text == nil {
		return nil
	}
	uri := p.TextDocument.URI
	h.handleDiagnostics(uri, h.analyze(uri, *p.Text))
	return nil
}
