package codegen

import (
	"strings"

	"github.com/dnalang/dnalang/frontend/ast"
)

func (cg *Codegen) genQuantumState(ops []ast.QuantumOp) {
	cg.ln("# Quantum state preparation")
	for _, op := range ops {
		cg.genQuantumOp(op)
	}
	cg.ln("")
}

// Superposition always targets qubit 0 and measurement always measures the
// whole circuit; consumers rely on this exact output.
func (cg *Codegen) genQuantumOp(op ast.QuantumOp) {
	switch op := op.(type) {
	case *ast.StateOp:
		cg.ln("# Superposition: %s", strings.Join(op.Params, ", "))
		cg.ln("%s.h(0)  # Hadamard for superposition", CIRCUIT_VAR)
	case *ast.EntangleOp:
		cg.ln("%s.cx(%d, %d)  # Entangle qubits %d and %d", CIRCUIT_VAR, op.Qubit1, op.Qubit2, op.Qubit1, op.Qubit2)
	case *ast.MeasureOp:
		cg.ln("%s.measure_all()", CIRCUIT_VAR)
	default:
		panic("codegen: unhandled quantum op")
	}
}
