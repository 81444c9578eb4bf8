package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dnalang/dnalang/frontend"
	"github.com/dnalang/dnalang/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThenBuild(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "Bell")

	require.NoError(t, (&NewCmd{Name: dir}).Run())
	assert.Error(t, (&NewCmd{Name: dir}).Run(), "second create must fail")

	starter, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(frontend.DefaultMain)))
	require.NoError(t, err)
	assert.Equal(t, samples.Starter(), string(starter))

	config, err := frontend.LoadProjectToml(dir)
	require.NoError(t, err)
	assert.Equal(t, "Bell", config.Name)

	require.NoError(t, (&BuildCmd{Path: dir, JSON: true}).Run())

	py, err := os.ReadFile(filepath.Join(dir, frontend.DefaultOut, "bell.py"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(py), "from qiskit import QuantumCircuit"))
	assert.Contains(t, string(py), "qc = QuantumCircuit(2)")

	data, err := os.ReadFile(filepath.Join(dir, frontend.DefaultOut, "bell.json"))
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, true, res["success"])
	assert.EqualValues(t, 2, res["num_qubits"])
}

func TestNewRejectsBadName(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&NewCmd{Name: filepath.Join(t.TempDir(), `bad"name`)}).Run())
}

func TestBuildReportsCompileError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, frontend.ProjectFile), []byte("name = \"broken\"\nversion = \"0.1\"\nmain = \"broken.dna\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.dna"), []byte("organism {"), 0644))

	err := (&BuildCmd{Path: dir}).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ParseError")
	assert.NoDirExists(t, filepath.Join(dir, frontend.DefaultOut))
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.dna")
	bad := filepath.Join(dir, "bad.dna")
	require.NoError(t, os.WriteFile(good, []byte(samples.Files["swarm.dna"]), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("organism Foo { $ }"), 0644))

	assert.NoError(t, (&CheckCmd{File: good}).Run())
	assert.EqualError(t, (&CheckCmd{File: bad}).Run(), "check failed")
}

func TestTokens(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "bell.dna")
	require.NoError(t, os.WriteFile(file, []byte(samples.Starter()), 0644))

	assert.NoError(t, (&TokensCmd{File: file}).Run())
	assert.NoError(t, (&TokensCmd{File: file, JSON: true}).Run())
}
