package lsp

import (
	"testing"

	"github.com/dnalang/dnalang/frontend/common"
	"github.com/gluax-lang/lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uri = "file:///tmp/project/src/main.dna"

const source = `organism Foo {
    genome {
        gene g = encode(d) -> qubits[3];
    }
}
`

func TestAnalyzeCachesByURI(t *testing.T) {
	h := newHandler()

	analysis := h.analyze(uri, source)
	require.NoError(t, analysis.Err)
	assert.Equal(t, 3, analysis.Qubits)
	assert.Equal(t, source, h.fileCache[uri])
	assert.Same(t, analysis, h.analyses[uri])
	assert.Equal(t, "/tmp/project/src/main.dna", analysis.Src)

	broken := h.analyze(uri, "organism {")
	assert.Error(t, broken.Err)
	assert.Len(t, broken.Diags, 1)
	assert.Same(t, broken, h.analyses[uri])

	// no server attached, nothing to publish to
	h.handleDiagnostics(uri, broken)
}

func TestCompletionItems(t *testing.T) {
	items := completionItems(nil)

	kinds := make(map[string]any)
	for _, item := range items {
		kinds[item.Label] = item.Kind
	}
	assert.Equal(t, lsp.CompletionItemKindField, kinds["organism"])
	assert.Equal(t, lsp.CompletionItemKindField, kinds["quantum_state"])
	assert.Equal(t, lsp.CompletionItemKindMethod, kinds["entangle"])
	assert.Equal(t, lsp.CompletionItemKindMethod, kinds["superpose"])
	assert.NotContains(t, kinds, "Foo")

	h := newHandler()
	items = completionItems(h.analyze(uri, source))

	var foo, g *lsp.CompletionItem
	for i := range items {
		switch items[i].Label {
		case "Foo":
			foo = &items[i]
		case "g":
			g = &items[i]
		}
	}
	require.NotNil(t, foo)
	require.NotNil(t, g)
	assert.Equal(t, lsp.CompletionItemKindVariable, foo.Kind)
	assert.Contains(t, foo.Detail, "// 3 qubits, 1 genes, 0 quantum ops")
	assert.Contains(t, g.Detail, "gene g = encode(d) -> qubits[3];")
}

func TestToLocation(t *testing.T) {
	loc := toLocation(uri, common.SpanNew(2, 2, 14, 15))
	assert.Equal(t, uri, loc.URI)
	assert.Equal(t, lsp.Position{Line: 1, Character: 13}, loc.Range.Start)
	assert.Equal(t, lsp.Position{Line: 1, Character: 14}, loc.Range.End)
}
