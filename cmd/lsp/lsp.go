package lsp

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/dnalang/dnalang/common"
	"github.com/dnalang/dnalang/frontend/sema"
	protocol "github.com/gluax-lang/lsp"
)

func RunLSP() error {
	return NewHandler().Serve(context.Background())
}

type Handler struct {
	*protocol.Server
	fileCache map[string]string         // uri -> latest text
	analyses  map[string]*sema.Analysis // uri -> analysis of that text
	mu        sync.Mutex
}

func NewHandler() *Handler {
	h := newHandler()
	h.Server = protocol.NewServer(os.Stdin, os.Stdout, h)
	return h
}

func newHandler() *Handler {
	return &Handler{
		fileCache: make(map[string]string),
		analyses:  make(map[string]*sema.Analysis),
	}
}

func (h *Handler) Initialize(p *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	if p.WorkspaceFolders != nil && len(*p.WorkspaceFolders) > 0 {
		log.Printf("root: %s", (*p.WorkspaceFolders)[0].URI)
	}
	return &protocol.InitializeResult{Capabilities: protocol.ServerCapabilities{
		HoverProvider: protocol.NewHoverProviderBool(true),
		TextDocumentSync: protocol.NewTextDocumentSyncOptions(protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncKindFull,
			Save: &protocol.SaveOptions{
				IncludeText: true,
			},
		}),
		InlayHintProvider: protocol.NewInlayHintProviderOptions(protocol.InlayHintOptions{
			ResolveProvider: false,
			WorkDoneProgressOptions: protocol.WorkDoneProgressOptions{
				WorkDoneProgress: false,
			},
		}),
		DefinitionProvider: true,
	}}, nil
}

func (h *Handler) Initialized() error {
	log.Println("Initialized")
	return nil
}

// analyze re-runs the frontend over text and caches the result for uri.
// Callers hold h.mu.
func (h *Handler) analyze(uri, text string) *sema.Analysis {
	src := uri
	if path, err := common.URIToFilePath(uri); err == nil {
		src = path
	}
	h.fileCache[uri] = text
	analysis := sema.Analyze(src, text)
	h.analyses[uri] = analysis
	return analysis
}

func (h *Handler) handleDiagnostics(uri string, analysis *sema.Analysis) {
	diags := analysis.Diags
	if diags == nil {
		diags = []sema.Diagnostic{} // clears stale errors on the client
	}
	if h.Server != nil {
		h.PublishDiagnostics(uri, diags)
	}
}
