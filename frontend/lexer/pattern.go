package lexer

import "regexp"

type pattern struct {
	kind Kind
	re   *regexp.Regexp
}

func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)`)
}

// patterns are tried in order and the first match wins, even when a later
// pattern would match a longer token. `==` must stay ahead of `=`.
var patterns = []pattern{
	{KindNumber, anchored(`\d+\.?\d*`)},
	{KindString, anchored(`"[^"]*"`)},
	{KindIdentifier, anchored(`[a-zA-Z_][a-zA-Z0-9_]*`)},
	{KindArrow, anchored(`->`)},
	{KindLBrace, anchored(`\{`)},
	{KindRBrace, anchored(`\}`)},
	{KindLParen, anchored(`\(`)},
	{KindRParen, anchored(`\)`)},
	{KindLBracket, anchored(`\[`)},
	{KindRBracket, anchored(`\]`)},
	{KindSemicolon, anchored(`;`)},
	{KindColon, anchored(`:`)},
	{KindComma, anchored(`,`)},
	{KindEquals, anchored(`==`)},
	{KindAssign, anchored(`=`)},
	{KindPipe, anchored(`\|`)},
	{KindGT, anchored(`>`)},
	{KindLT, anchored(`<`)},
	{KindPlus, anchored(`\+`)},
	{KindMinus, anchored(`-`)},
	{KindStar, anchored(`\*`)},
	{KindSlash, anchored(`/`)},
}

// match returns the kind and text of the first pattern matching at the start
// of rest.
func match(rest string) (Kind, string, bool) {
	for _, p := range patterns {
		if loc := p.re.FindStringIndex(rest); loc != nil && loc[1] > 0 {
			return p.kind, rest[:loc[1]], true
		}
	}
	return 0, "", false
}
