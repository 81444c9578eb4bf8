package lexer

import (
	"github.com/dnalang/dnalang/frontend/common"
)

// Kind is the syntactic category of a token.
type Kind int

const (
	_ Kind = iota

	KindNumber
	KindString
	KindIdentifier
	// KindArrow is `->`
	KindArrow
	// KindLBrace is `{`
	KindLBrace
	// KindRBrace is `}`
	KindRBrace
	// KindLParen is `(`
	KindLParen
	// KindRParen is `)`
	KindRParen
	// KindLBracket is `[`
	KindLBracket
	// KindRBracket is `]`
	KindRBracket
	// KindSemicolon is `;`
	KindSemicolon
	// KindColon is `:`
	KindColon
	// KindComma is `,`
	KindComma
	// KindEquals is `==`
	KindEquals
	// KindAssign is `=`
	KindAssign
	// KindPipe is `|`
	KindPipe
	// KindGT is `>`
	KindGT
	// KindLT is `<`
	KindLT
	// KindPlus is `+`
	KindPlus
	// KindMinus is `-`
	KindMinus
	// KindStar is `*`
	KindStar
	// KindSlash is `/`
	KindSlash

	keywordsStart // keywords below
	KindOrganism
	KindGenome
	KindGene
	KindEncode
	KindQubits
	KindQuantumState
	KindState
	KindSuperpose
	KindEntangle
	KindMeasure
	KindControl
	KindIf
	KindApply
	KindEvolve
	KindFitness
	keywordsEnd
)

var kindNames = [...]string{
	KindNumber:     "NUMBER",
	KindString:     "STRING",
	KindIdentifier: "IDENTIFIER",
	KindArrow:      "ARROW",
	KindLBrace:     "LBRACE",
	KindRBrace:     "RBRACE",
	KindLParen:     "LPAREN",
	KindRParen:     "RPAREN",
	KindLBracket:   "LBRACKET",
	KindRBracket:   "RBRACKET",
	KindSemicolon:  "SEMICOLON",
	KindColon:      "COLON",
	KindComma:      "COMMA",
	KindEquals:     "EQUALS",
	KindAssign:     "ASSIGN",
	KindPipe:       "PIPE",
	KindGT:         "GT",
	KindLT:         "LT",
	KindPlus:       "PLUS",
	KindMinus:      "MINUS",
	KindStar:       "STAR",
	KindSlash:      "SLASH",

	KindOrganism:     "ORGANISM",
	KindGenome:       "GENOME",
	KindGene:         "GENE",
	KindEncode:       "ENCODE",
	KindQubits:       "QUBITS",
	KindQuantumState: "QUANTUM_STATE",
	KindState:        "STATE",
	KindSuperpose:    "SUPERPOSE",
	KindEntangle:     "ENTANGLE",
	KindMeasure:      "MEASURE",
	KindControl:      "CONTROL",
	KindIf:           "IF",
	KindApply:        "APPLY",
	KindEvolve:       "EVOLVE",
	KindFitness:      "FITNESS",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsKeyword reports whether k was produced by re-tagging a reserved word.
func (k Kind) IsKeyword() bool {
	return k > keywordsStart && k < keywordsEnd
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is a single lexical unit. Value is always the exact source text.
type Token struct {
	Kind   Kind
	Value  string
	Line   int
	Column int
	span   common.Span
}

func (t Token) Span() common.Span {
	return t.span
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Value + ")"
}

func (t Token) Is(k Kind) bool {
	return t.Kind == k
}
