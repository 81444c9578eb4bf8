package sema

import "github.com/dnalang/dnalang/frontend/ast"

// CountQubits returns the total qubit demand of a program: every gene of
// every organism counts on its own, nothing is shared or deduplicated.
func CountQubits(prog *ast.Program) int {
	if prog == nil {
		return 0
	}
	total := 0
	for _, organism := range prog.Organisms {
		total += OrganismQubits(organism)
	}
	return total
}

// OrganismQubits sums the genes of a single organism.
func OrganismQubits(organism *ast.Organism) int {
	total := 0
	for _, gene := range organism.Genome {
		total += gene.NumQubits
	}
	return total
}
