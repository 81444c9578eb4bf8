package parser

import (
	"fmt"

	"github.com/dnalang/dnalang/frontend/common"
	"github.com/dnalang/dnalang/frontend/lexer"
	protocol "github.com/gluax-lang/lsp"
)

// EndOfInput is reported as the actual token when the stream ran out.
const EndOfInput = "end of input"

// ParseError reports the first token that did not fit the grammar.
type ParseError struct {
	Message  string
	Expected lexer.Kind // zero when the failure is not a kind mismatch
	Got      string     // actual kind name, or EndOfInput
	span     common.Span
}

func newParseError(msg string, expected lexer.Kind, got string, span common.Span) *ParseError {
	return &ParseError{Message: msg, Expected: expected, Got: got, span: span}
}

func (p *parser) expected(kind lexer.Kind) *ParseError {
	got := EndOfInput
	if tok := p.current(); tok != nil {
		got = tok.Kind.String()
	}
	return newParseError(fmt.Sprintf("expected %s, got %s", kind, got), kind, got, p.span())
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Span() common.Span {
	return e.span
}

func (e *ParseError) Diagnostic() *protocol.Diagnostic {
	return common.ErrorDiag(e.Message, e.span)
}

var _ common.Diagnosable = (*ParseError)(nil)
