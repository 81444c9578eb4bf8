package lexer

// table is populated at compile-time; no code runs in init().
var keywordTable = map[string]Kind{
	"organism":      KindOrganism,
	"genome":        KindGenome,
	"gene":          KindGene,
	"encode":        KindEncode,
	"qubits":        KindQubits,
	"quantum_state": KindQuantumState,
	"state":         KindState,
	"superpose":     KindSuperpose,
	"entangle":      KindEntangle,
	"measure":       KindMeasure,
	"control":       KindControl,
	"if":            KindIf,
	"apply":         KindApply,
	"evolve":        KindEvolve,
	"fitness":       KindFitness,
}

func lookupKeyword(lit string) (Kind, bool) {
	kw, ok := keywordTable[lit]
	return kw, ok
}

// Keywords returns the reserved words, in no particular order.
func Keywords() []string {
	out := make([]string, 0, len(keywordTable))
	for lit := range keywordTable {
		out = append(out, lit)
	}
	return out
}
