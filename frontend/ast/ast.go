// Package ast holds the syntax tree produced by the parser. The node set is
// closed: QuantumOp can only be implemented inside this package.
package ast

import (
	"github.com/dnalang/dnalang/frontend/common"
)

type Program struct {
	Organisms []*Organism
	span      common.Span
}

func NewProgram(organisms []*Organism, span common.Span) *Program {
	return &Program{Organisms: organisms, span: span}
}

func (p *Program) Span() common.Span {
	return p.span
}

/* Organism */

type Organism struct {
	Name         string
	Genome       []*Gene
	QuantumState []QuantumOp
	Fitness      *string // raw fitness text, nil when absent
	NameSpan     common.Span
	span         common.Span
}

func NewOrganism(name string, genome []*Gene, state []QuantumOp, fitness *string, nameSpan, span common.Span) *Organism {
	return &Organism{
		Name:         name,
		Genome:       genome,
		QuantumState: state,
		Fitness:      fitness,
		NameSpan:     nameSpan,
		span:         span,
	}
}

func (o *Organism) Span() common.Span {
	return o.span
}

/* Gene */

type Gene struct {
	Name      string
	DataRef   string
	NumQubits int
	NameSpan  common.Span
	span      common.Span
}

func NewGene(name, dataRef string, numQubits int, nameSpan, span common.Span) *Gene {
	return &Gene{Name: name, DataRef: dataRef, NumQubits: numQubits, NameSpan: nameSpan, span: span}
}

func (g *Gene) Span() common.Span {
	return g.span
}
