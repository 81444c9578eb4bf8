package codegen

const CIRCUIT_VAR = "qc"

func headers(cg *Codegen) {
	cg.ln("from qiskit import QuantumCircuit, QuantumRegister, ClassicalRegister")
	cg.ln("from qiskit.quantum_info import Statevector")
	cg.ln("import numpy as np")
	cg.ln("")
}
