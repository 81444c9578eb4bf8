package samples_test

import (
	"testing"

	"github.com/dnalang/dnalang/compile"
	"github.com/dnalang/dnalang/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplesCompile(t *testing.T) {
	t.Parallel()

	expected := map[string]struct {
		organisms int
		qubits    int
	}{
		"bell.dna":    {1, 2},
		"swarm.dna":   {3, 10},
		"lenient.dna": {1, 6},
	}

	assert.Equal(t, []string{"bell.dna", "lenient.dna", "swarm.dna"}, samples.Names())

	for name, want := range expected {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := compile.CompileNamed(name, samples.Files[name])
			require.True(t, res.Success, res.Error)
			assert.Len(t, res.Ast.Organisms, want.organisms)
			assert.Equal(t, want.qubits, res.NumQubits)
		})
	}
}

func TestLenientSample(t *testing.T) {
	t.Parallel()

	res := compile.Compile(samples.Files["lenient.dna"])
	require.True(t, res.Success)

	org := res.Ast.Organisms[0]
	require.Len(t, org.Genome, 2)
	assert.Equal(t, "core", org.Genome[0].Name)
	assert.Equal(t, "extra", org.Genome[1].Name)
	assert.Len(t, org.QuantumState, 1)
	require.NotNil(t, org.Fitness)
	assert.Equal(t, "survival | adaptability", *org.Fitness)
}

func TestStarter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, samples.Files[samples.StarterName], samples.Starter())
	assert.NotEmpty(t, samples.Starter())
}
