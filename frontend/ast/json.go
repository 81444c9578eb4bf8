package ast

import (
	"encoding/json"
)

// Nodes are serialized with a "type" tag so that clients can switch on the
// node kind without knowing the Go types.

const (
	TypeProgram  = "PROGRAM"
	TypeOrganism = "ORGANISM"
	TypeGene     = "GENE"
	TypeState    = "STATE"
	TypeEntangle = "ENTANGLE"
	TypeMeasure  = "MEASURE"
)

func (p *Program) MarshalJSON() ([]byte, error) {
	organisms := p.Organisms
	if organisms == nil {
		organisms = []*Organism{}
	}
	return json.Marshal(struct {
		Type      string      `json:"type"`
		Organisms []*Organism `json:"organisms"`
	}{TypeProgram, organisms})
}

func (o *Organism) MarshalJSON() ([]byte, error) {
	genome := o.Genome
	if genome == nil {
		genome = []*Gene{}
	}
	state := o.QuantumState
	if state == nil {
		state = []QuantumOp{}
	}
	return json.Marshal(struct {
		Type         string      `json:"type"`
		Name         string      `json:"name"`
		Genome       []*Gene     `json:"genome"`
		QuantumState []QuantumOp `json:"quantumState"`
		Fitness      *string     `json:"fitness"`
	}{TypeOrganism, o.Name, genome, state, o.Fitness})
}

func (g *Gene) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string `json:"type"`
		Name      string `json:"name"`
		DataRef   string `json:"dataRef"`
		NumQubits int    `json:"numQubits"`
	}{TypeGene, g.Name, g.DataRef, g.NumQubits})
}

func (s *StateOp) MarshalJSON() ([]byte, error) {
	params := s.Params
	if params == nil {
		params = []string{}
	}
	return json.Marshal(struct {
		Type   string   `json:"type"`
		Name   string   `json:"name"`
		Params []string `json:"params"`
	}{TypeState, s.Name, params})
}

func (e *EntangleOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Qubit1 int    `json:"qubit1"`
		Qubit2 int    `json:"qubit2"`
	}{TypeEntangle, e.Qubit1, e.Qubit2})
}

func (m *MeasureOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Qubit  int    `json:"qubit"`
		Result string `json:"result"`
	}{TypeMeasure, m.Qubit, m.Result})
}
