package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/dnalang/dnalang/frontend/common"
)

// lexer is a pattern-driven scanner over a single source string.
type lexer struct {
	src          string // src names the file being scanned
	code         string
	pos          int
	line, column int
}

// Lex converts code into its full token sequence. src is only used to label
// spans. Any unrecognised character aborts lexing with a *LexError.
func Lex(src, code string) ([]Token, error) {
	tokens := make([]Token, 0, len(code)/4)
	lx := newLexer(src, code)
	for {
		tok, ok, err := lx.nextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func newLexer(src, code string) *lexer {
	return &lexer{
		src:  src,
		code: code,
		line: 1, column: 1,
	}
}

func (lx *lexer) eof() bool {
	return lx.pos >= len(lx.code)
}

func (lx *lexer) curChr() (rune, int) {
	return utf8.DecodeRuneInString(lx.code[lx.pos:])
}

func (lx *lexer) advance(r rune, width int) {
	lx.pos += width
	if r == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
}

// advanceText moves past text, keeping line and column in step with it.
func (lx *lexer) advanceText(text string) {
	for _, r := range text {
		lx.advance(r, utf8.RuneLen(r))
	}
}

// skipTrivia skips whitespace and `#` line comments.
func (lx *lexer) skipTrivia() {
	for !lx.eof() {
		c, w := lx.curChr()
		switch {
		case unicode.IsSpace(c):
			lx.advance(c, w)
		case c == '#':
			for !lx.eof() {
				c, w := lx.curChr()
				if c == '\n' {
					break
				}
				lx.advance(c, w)
			}
		default:
			return
		}
	}
}

func (lx *lexer) span(line, column int) common.Span {
	span := common.SpanNew(uint32(line), uint32(lx.line), uint32(column), uint32(lx.column))
	span.Source = lx.src
	return span
}

func (lx *lexer) nextToken() (Token, bool, error) {
	lx.skipTrivia()
	if lx.eof() {
		return Token{}, false, nil
	}

	kind, text, ok := match(lx.code[lx.pos:])
	if !ok {
		c, _ := lx.curChr()
		return Token{}, false, lx.error(c)
	}

	if kind == KindIdentifier {
		if kw, ok := lookupKeyword(text); ok {
			kind = kw
		}
	}

	line, column := lx.line, lx.column
	lx.advanceText(text)
	return Token{
		Kind:   kind,
		Value:  text,
		Line:   line,
		Column: column,
		span:   lx.span(line, column),
	}, true, nil
}
