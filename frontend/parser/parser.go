package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dnalang/dnalang/frontend/ast"
	"github.com/dnalang/dnalang/frontend/common"
	"github.com/dnalang/dnalang/frontend/lexer"
)

type Span = common.Span

var SpanFrom = common.SpanFrom

type parser struct {
	TokenStream []lexer.Token
	Pos         int
}

// Parse builds the syntax tree for a whole token sequence. The first grammar
// violation aborts parsing and is returned as a *ParseError; no partial tree
// is ever returned.
func Parse(tkS []lexer.Token) (astRet *ast.Program, err error) {
	p := &parser{
		TokenStream: tkS,
		Pos:         0,
	}

	defer func() {
		if r := recover(); r != nil {
			astRet = nil
			err = errorFromPanic(r)
		}
	}()

	astRet = p.parseProgram()
	return
}

func errorFromPanic(r any) error {
	switch err := r.(type) {
	case *ParseError:
		return err
	default:
		panic(r)
	}
}

// current returns the token under the cursor, or nil at end of input.
func (p *parser) current() *lexer.Token {
	if p.Pos >= len(p.TokenStream) {
		return nil
	}
	return &p.TokenStream[p.Pos]
}

func (p *parser) at(kind lexer.Kind) bool {
	tok := p.current()
	return tok != nil && tok.Kind == kind
}

// atBodyEnd reports whether a brace-delimited body loop should stop.
func (p *parser) atBodyEnd() bool {
	return p.current() == nil || p.at(lexer.KindRBrace)
}

func (p *parser) advance() {
	if p.Pos < len(p.TokenStream) {
		p.Pos++
	}
}

func (p *parser) consume(kind lexer.Kind) lexer.Token {
	tok := p.current()
	if tok == nil || tok.Kind != kind {
		panic(p.expected(kind))
	}
	p.advance()
	return *tok
}

func (p *parser) span() Span {
	if tok := p.current(); tok != nil {
		return tok.Span()
	}
	return p.prevSpan()
}

func (p *parser) prevSpan() Span {
	if p.Pos == 0 || len(p.TokenStream) == 0 {
		return common.SpanNew(1, 1, 1, 1)
	}
	idx := min(p.Pos, len(p.TokenStream)) - 1
	return p.TokenStream[idx].Span()
}

// parseInt reads a NUMBER token as a non-negative integer; a fractional
// part is truncated.
func (p *parser) parseInt(tok lexer.Token) int {
	digits, _, _ := strings.Cut(tok.Value, ".")
	n, err := strconv.Atoi(digits)
	if err != nil {
		panic(newParseError(fmt.Sprintf("invalid integer %q", tok.Value), 0, "", tok.Span()))
	}
	return n
}

func (p *parser) parseProgram() *ast.Program {
	spanStart := p.span()

	organisms := []*ast.Organism{}
	for tok := p.current(); tok != nil; tok = p.current() {
		if tok.Is(lexer.KindOrganism) {
			organisms = append(organisms, p.parseOrganism())
		} else {
			p.advance() // top-level tokens outside an organism are ignored
		}
	}

	return ast.NewProgram(organisms, SpanFrom(spanStart, p.prevSpan()))
}
