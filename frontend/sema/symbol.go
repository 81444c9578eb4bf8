package sema

import (
	"fmt"
	"strings"

	"github.com/dnalang/dnalang/frontend/ast"
)

type SymbolKind int

const (
	SymOrganism SymbolKind = iota + 1
	SymGene
)

// Symbol is a named declaration in a source file together with every
// identifier token that spells the same name.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Span     Span // span of the declaring name
	Refs     []Span
	Organism *ast.Organism
	Gene     *ast.Gene // nil for organisms
}

// LSPString renders the symbol the way it is shown on hover.
func (s *Symbol) LSPString() string {
	switch s.Kind {
	case SymOrganism:
		o := s.Organism
		var sb strings.Builder
		fmt.Fprintf(&sb, "organism %s\n", o.Name)
		fmt.Fprintf(&sb, "// %d qubits, %d genes, %d quantum ops", OrganismQubits(o), len(o.Genome), len(o.QuantumState))
		if o.Fitness != nil {
			fmt.Fprintf(&sb, "\n// fitness = %s", *o.Fitness)
		}
		return sb.String()
	case SymGene:
		g := s.Gene
		return fmt.Sprintf("gene %s = encode(%s) -> qubits[%d]; // in %s", g.Name, g.DataRef, g.NumQubits, s.Organism.Name)
	}
	return s.Name
}
