package ast

import "github.com/dnalang/dnalang/frontend/common"

type QuantumOp interface {
	isQuantumOp()
	Span() common.Span
}

/* State */

// StateOp prepares a named superposition. Params are raw token values.
type StateOp struct {
	Name   string
	Params []string
	span   common.Span
}

func NewStateOp(name string, params []string, span common.Span) *StateOp {
	return &StateOp{Name: name, Params: params, span: span}
}

func (s *StateOp) isQuantumOp() {}

func (s *StateOp) Span() common.Span {
	return s.span
}

/* Entangle */

// EntangleOp keeps only the qubit indices; register names are discarded.
type EntangleOp struct {
	Qubit1, Qubit2 int
	span           common.Span
}

func NewEntangleOp(q1, q2 int, span common.Span) *EntangleOp {
	return &EntangleOp{Qubit1: q1, Qubit2: q2, span: span}
}

func (e *EntangleOp) isQuantumOp() {}

func (e *EntangleOp) Span() common.Span {
	return e.span
}

/* Measure */

type MeasureOp struct {
	Qubit  int
	Result string
	span   common.Span
}

func NewMeasureOp(qubit int, result string, span common.Span) *MeasureOp {
	return &MeasureOp{Qubit: qubit, Result: result, span: span}
}

func (m *MeasureOp) isQuantumOp() {}

func (m *MeasureOp) Span() common.Span {
	return m.span
}
