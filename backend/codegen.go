package codegen

import (
	"fmt"
	"strings"

	"github.com/dnalang/dnalang/frontend/ast"
	"github.com/dnalang/dnalang/frontend/sema"
)

type Codegen struct {
	Ast *ast.Program

	buf strings.Builder
}

// Generate renders the circuit-construction script for a whole program.
// Output is fully determined by the tree; lines are separated by "\n" and
// the last line carries no terminator.
func Generate(prog *ast.Program) string {
	cg := Codegen{Ast: prog}
	cg.buf.Grow(1024)
	headers(&cg)
	cg.generate()
	return strings.TrimSuffix(cg.buf.String(), "\n")
}

func (cg *Codegen) writef(format string, args ...any) {
	cg.buf.WriteString(fmt.Sprintf(format, args...))
}

func (cg *Codegen) writeByte(b byte) {
	cg.buf.WriteByte(b)
}

func (cg *Codegen) ln(format string, args ...any) {
	if format == "" && len(args) == 0 {
		cg.writeByte('\n')
		return
	}
	cg.writef(format, args...)
	cg.writeByte('\n')
}

func (cg *Codegen) generate() {
	for _, organism := range cg.Ast.Organisms {
		cg.genOrganism(organism)
	}
}

func (cg *Codegen) genOrganism(organism *ast.Organism) {
	cg.ln("# Organism: %s", organism.Name)
	cg.ln("")

	cg.ln("%s = QuantumCircuit(%d)", CIRCUIT_VAR, sema.OrganismQubits(organism))
	cg.ln("")

	if len(organism.Genome) > 0 {
		cg.genGenome(organism.Genome)
	}
	if len(organism.QuantumState) > 0 {
		cg.genQuantumState(organism.QuantumState)
	}
	if organism.Fitness != nil {
		cg.ln("# Fitness function: %s", *organism.Fitness)
		cg.ln("")
	}
}

// Encoding is descriptive only: genes become comments, not instructions.
func (cg *Codegen) genGenome(genes []*ast.Gene) {
	cg.ln("# Genome encoding")
	for _, gene := range genes {
		cg.ln("# Gene %s: encode %s into %d qubits", gene.Name, gene.DataRef, gene.NumQubits)
	}
	cg.ln("")
}
