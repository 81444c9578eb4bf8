package parser

import (
	"strings"

	"github.com/dnalang/dnalang/frontend/ast"
	"github.com/dnalang/dnalang/frontend/lexer"
)

func (p *parser) parseOrganism() *ast.Organism {
	spanStart := p.span()

	p.consume(lexer.KindOrganism)
	name := p.consume(lexer.KindIdentifier)
	p.consume(lexer.KindLBrace)

	var (
		genome  []*ast.Gene
		state   []ast.QuantumOp
		fitness *string
	)

	for !p.atBodyEnd() {
		switch p.current().Kind {
		case lexer.KindGenome:
			genome = append(genome, p.parseGenome()...)
		case lexer.KindQuantumState:
			state = append(state, p.parseQuantumState()...)
		case lexer.KindFitness:
			f := p.parseFitness()
			fitness = &f
		default:
			p.advance() // skip unknown
		}
	}

	p.consume(lexer.KindRBrace)

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewOrganism(name.Value, genome, state, fitness, name.Span(), span)
}

func (p *parser) parseGenome() []*ast.Gene {
	p.consume(lexer.KindGenome)
	p.consume(lexer.KindLBrace)

	var genes []*ast.Gene
	for !p.atBodyEnd() {
		if p.at(lexer.KindGene) {
			genes = append(genes, p.parseGene())
		} else {
			p.advance()
		}
	}

	p.consume(lexer.KindRBrace)
	return genes
}

// gene NAME = encode(DATA) -> qubits[N];
func (p *parser) parseGene() *ast.Gene {
	spanStart := p.span()

	p.consume(lexer.KindGene)
	name := p.consume(lexer.KindIdentifier)
	p.consume(lexer.KindAssign)
	p.consume(lexer.KindEncode)
	p.consume(lexer.KindLParen)
	dataRef := p.consume(lexer.KindIdentifier)
	p.consume(lexer.KindRParen)
	p.consume(lexer.KindArrow)
	p.consume(lexer.KindQubits)
	p.consume(lexer.KindLBracket)
	numQubits := p.parseInt(p.consume(lexer.KindNumber))
	p.consume(lexer.KindRBracket)
	p.consume(lexer.KindSemicolon)

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewGene(name.Value, dataRef.Value, numQubits, name.Span(), span)
}

// parseFitness collects every token up to the terminating `;` verbatim.
func (p *parser) parseFitness() string {
	p.consume(lexer.KindFitness)
	p.consume(lexer.KindAssign)

	var expr []string
	for tok := p.current(); tok != nil && !tok.Is(lexer.KindSemicolon); tok = p.current() {
		expr = append(expr, tok.Value)
		p.advance()
	}

	p.consume(lexer.KindSemicolon)
	return strings.Join(expr, " ")
}
