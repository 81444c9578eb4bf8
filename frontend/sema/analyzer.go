// Package sema runs the semantic passes over a parsed program: qubit
// counting for the compiler, plus the symbol and hint tables used by editors.
package sema

import (
	"errors"
	"fmt"

	"github.com/dnalang/dnalang/frontend/ast"
	"github.com/dnalang/dnalang/frontend/common"
	"github.com/dnalang/dnalang/frontend/lexer"
	"github.com/dnalang/dnalang/frontend/parser"
	protocol "github.com/gluax-lang/lsp"
)

type (
	Span       = common.Span
	Diagnostic = protocol.Diagnostic
	InlayHint  = protocol.InlayHint
)

type Analysis struct {
	Src         string // source file name
	Tokens      []lexer.Token
	Ast         *ast.Program
	Qubits      int
	Err         error // first lex or parse error, nil on success
	Diags       []Diagnostic
	InlayHints  []InlayHint
	Symbols     []*Symbol
	SpanSymbols map[Span]*Symbol // every identifier span that names a symbol
}

// Analyze lexes, parses and counts a single source. It never fails: errors
// end up in Err and Diags.
func Analyze(src, code string) *Analysis {
	a := &Analysis{
		Src:         src,
		SpanSymbols: make(map[Span]*Symbol),
	}

	toks, err := lexer.Lex(src, code)
	if err != nil {
		a.fail(err)
		return a
	}
	a.Tokens = toks

	prog, err := parser.Parse(toks)
	if err != nil {
		a.fail(err)
		return a
	}
	a.Ast = prog
	a.Qubits = CountQubits(prog)

	a.declare()
	a.resolve()
	return a
}

func (a *Analysis) fail(err error) {
	a.Err = err
	var d common.Diagnosable
	if errors.As(err, &d) {
		a.Diags = append(a.Diags, *d.Diagnostic())
		return
	}
	a.Diags = append(a.Diags, *common.ErrorDiag(err.Error(), common.SpanNew(1, 1, 1, 1)))
}

func (a *Analysis) addSymbol(sym *Symbol) {
	a.Symbols = append(a.Symbols, sym)
	a.SpanSymbols[sym.Span] = sym
}

func (a *Analysis) declare() {
	for _, organism := range a.Ast.Organisms {
		a.addSymbol(&Symbol{
			Name:     organism.Name,
			Kind:     SymOrganism,
			Span:     organism.NameSpan,
			Organism: organism,
		})
		a.InlayHintType(fmt.Sprintf(": %d qubits", OrganismQubits(organism)), organism.NameSpan)

		for _, gene := range organism.Genome {
			a.addSymbol(&Symbol{
				Name:     gene.Name,
				Kind:     SymGene,
				Span:     gene.NameSpan,
				Organism: organism,
				Gene:     gene,
			})
		}
	}
}

// resolve links identifier tokens to the first symbol declared with the same
// name. The language has no scoping, so this is purely textual.
func (a *Analysis) resolve() {
	byName := make(map[string]*Symbol, len(a.Symbols))
	for _, sym := range a.Symbols {
		if _, ok := byName[sym.Name]; !ok {
			byName[sym.Name] = sym
		}
	}
	for _, tok := range a.Tokens {
		if !tok.Is(lexer.KindIdentifier) {
			continue
		}
		sym, ok := byName[tok.Value]
		if !ok {
			continue
		}
		span := tok.Span()
		if span != sym.Span {
			sym.Refs = append(sym.Refs, span)
		}
		if _, taken := a.SpanSymbols[span]; !taken {
			a.SpanSymbols[span] = sym
		}
	}
}

func (a *Analysis) InlayHintType(label string, span Span) {
	kind := protocol.InlayHintKindType
	a.InlayHints = append(a.InlayHints, protocol.InlayHint{
		Position: protocol.Position{
			Line:      span.LineStart - 1,
			Character: span.ColumnEnd - 1,
		},
		Label: []protocol.InlayHintLabelPart{
			{Value: label},
		},
		Kind: &kind,
	})
}

// SymbolAt returns the symbol named by the identifier under pos, if any.
func (a *Analysis) SymbolAt(pos protocol.Position) *Symbol {
	for span, sym := range a.SpanSymbols {
		if span.Contains(pos) {
			return sym
		}
	}
	return nil
}

// TokenAt returns the token covering pos, or the one ending right before it.
func (a *Analysis) TokenAt(pos protocol.Position) *lexer.Token {
	for i := range a.Tokens {
		if a.Tokens[i].Span().Contains(pos) {
			return &a.Tokens[i]
		}
	}
	return nil
}
