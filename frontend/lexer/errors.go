package lexer

import (
	"fmt"

	"github.com/dnalang/dnalang/frontend/common"
	protocol "github.com/gluax-lang/lsp"
)

// LexError reports a character that no token pattern accepts.
type LexError struct {
	Char   rune
	Line   int
	Column int
	span   common.Span
}

func (lx *lexer) error(c rune) *LexError {
	span := common.SpanNew(uint32(lx.line), uint32(lx.line), uint32(lx.column), uint32(lx.column+1))
	span.Source = lx.src
	return &LexError{Char: c, Line: lx.line, Column: lx.column, span: span}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character '%c' at line %d, column %d", e.Char, e.Line, e.Column)
}

func (e *LexError) Span() common.Span {
	return e.span
}

func (e *LexError) Diagnostic() *protocol.Diagnostic {
	return common.ErrorDiag(e.Error(), e.span)
}

var _ common.Diagnosable = (*LexError)(nil)
