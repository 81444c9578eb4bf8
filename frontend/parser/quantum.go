package parser

import (
	"github.com/dnalang/dnalang/frontend/ast"
	"github.com/dnalang/dnalang/frontend/lexer"
)

func (p *parser) parseQuantumState() []ast.QuantumOp {
	p.consume(lexer.KindQuantumState)
	p.consume(lexer.KindLBrace)

	var ops []ast.QuantumOp
	for !p.atBodyEnd() {
		switch p.current().Kind {
		case lexer.KindState:
			ops = append(ops, p.parseState())
		case lexer.KindEntangle:
			ops = append(ops, p.parseEntangle())
		case lexer.KindMeasure:
			ops = append(ops, p.parseMeasure())
		default:
			p.advance() // skip unknown
		}
	}

	p.consume(lexer.KindRBrace)
	return ops
}

// state NAME = superpose(a, b, ...);
func (p *parser) parseState() ast.QuantumOp {
	spanStart := p.span()

	p.consume(lexer.KindState)
	name := p.consume(lexer.KindIdentifier)
	p.consume(lexer.KindAssign)
	p.consume(lexer.KindSuperpose)
	p.consume(lexer.KindLParen)

	params := []string{}
	for tok := p.current(); tok != nil && !tok.Is(lexer.KindRParen); tok = p.current() {
		if tok.Is(lexer.KindComma) {
			p.advance()
			continue
		}
		params = append(params, tok.Value)
		p.advance()
	}

	p.consume(lexer.KindRParen)
	p.consume(lexer.KindSemicolon)

	return ast.NewStateOp(name.Value, params, SpanFrom(spanStart, p.prevSpan()))
}

// entangle(a[i], b[j]);
func (p *parser) parseEntangle() ast.QuantumOp {
	spanStart := p.span()

	p.consume(lexer.KindEntangle)
	p.consume(lexer.KindLParen)
	q1 := p.parseQubitRef()
	p.consume(lexer.KindComma)
	q2 := p.parseQubitRef()
	p.consume(lexer.KindRParen)
	p.consume(lexer.KindSemicolon)

	return ast.NewEntangleOp(q1, q2, SpanFrom(spanStart, p.prevSpan()))
}

// measure(q[i]) -> result;
func (p *parser) parseMeasure() ast.QuantumOp {
	spanStart := p.span()

	p.consume(lexer.KindMeasure)
	p.consume(lexer.KindLParen)
	qubit := p.parseQubitRef()
	p.consume(lexer.KindRParen)
	p.consume(lexer.KindArrow)
	result := p.consume(lexer.KindIdentifier)
	p.consume(lexer.KindSemicolon)

	return ast.NewMeasureOp(qubit, result.Value, SpanFrom(spanStart, p.prevSpan()))
}

// parseQubitRef reads `name[N]` and keeps only N.
func (p *parser) parseQubitRef() int {
	p.consume(lexer.KindIdentifier)
	p.consume(lexer.KindLBracket)
	index := p.parseInt(p.consume(lexer.KindNumber))
	p.consume(lexer.KindRBracket)
	return index
}
