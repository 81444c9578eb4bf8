package compile_test

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dnalang/dnalang/compile"
	"github.com/dnalang/dnalang/frontend/lexer"
	"github.com/dnalang/dnalang/frontend/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bell = `organism Bell {
	genome { gene pair = encode(basis) -> qubits[2]; }
	quantum_state { entangle(q[0], q[1]); }
}`

func decode(t *testing.T, res compile.Result) map[string]any {
	t.Helper()
	data, err := json.Marshal(res)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestCompileSuccess(t *testing.T) {
	t.Parallel()

	res := compile.Compile(bell)
	require.True(t, res.Success)
	assert.Equal(t, 2, res.NumQubits)
	assert.Contains(t, res.QiskitCode, "qc = QuantumCircuit(2)")
	assert.Contains(t, res.QiskitCode, "qc.cx(0, 1)")
	require.Len(t, res.Ast.Organisms, 1)
	assert.Equal(t, "Bell", res.Ast.Organisms[0].Name)
	assert.Empty(t, res.Error)

	m := decode(t, res)
	assert.ElementsMatch(t, []string{"success", "qiskit_code", "num_qubits", "ast", "tokens"}, keys(m))
	assert.Equal(t, true, m["success"])
	assert.EqualValues(t, 2, m["num_qubits"])

	tree := m["ast"].(map[string]any)
	assert.Equal(t, "PROGRAM", tree["type"])

	tokens := m["tokens"].([]any)
	first := tokens[0].(map[string]any)
	assert.Equal(t, map[string]any{"type": "ORGANISM", "value": "organism", "line": float64(1)}, first)
}

func TestCompileEmptySource(t *testing.T) {
	t.Parallel()

	res := compile.Compile("  # nothing here\n")
	require.True(t, res.Success)
	assert.Zero(t, res.NumQubits)
	assert.Empty(t, res.Ast.Organisms)

	m := decode(t, res)
	assert.EqualValues(t, 0, m["num_qubits"])
	assert.Equal(t, []any{}, m["tokens"])
	assert.Equal(t, []any{}, m["ast"].(map[string]any)["organisms"])
}

func TestCompileFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		errType  compile.ErrorType
		contains string
	}{
		{"lex", "organism @", compile.ErrorTypeLex, "unexpected character '@' at line 1, column 10"},
		{"parse", "organism { }", compile.ErrorTypeParse, "expected IDENTIFIER, got LBRACE"},
		{"eof", "organism Foo {", compile.ErrorTypeParse, "end of input"},
		{"gene", "organism Foo { genome { gene g = encode(d) -> qubits[4] } }", compile.ErrorTypeParse, "expected SEMICOLON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := compile.Compile(tt.source)
			assert.False(t, res.Success)
			assert.Equal(t, tt.errType, res.ErrorType)
			assert.Contains(t, res.Error, tt.contains)

			m := decode(t, res)
			assert.ElementsMatch(t, []string{"success", "error", "error_type"}, keys(m))
			assert.Equal(t, false, m["success"])
			assert.Equal(t, string(tt.errType), m["error_type"])
		})
	}
}

func TestTokenPreviewCapped(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for i := range 20 {
		fmt.Fprintf(&sb, "organism O%d { }\n", i)
	}

	res := compile.Compile(sb.String())
	require.True(t, res.Success)
	require.Len(t, res.Tokens, compile.TokenPreviewLimit)
	assert.Equal(t, lexer.KindOrganism, res.Tokens[0].Type)
	assert.Equal(t, 1, res.Tokens[0].Line)
	assert.Len(t, res.Ast.Organisms, 20)

	small := compile.Preview(nil)
	assert.NotNil(t, small)
	assert.Empty(t, small)
}

func TestCompileConcurrent(t *testing.T) {
	t.Parallel()

	want := compile.Compile(bell)

	var wg sync.WaitGroup
	results := make([]compile.Result, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = compile.Compile(bell)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.QiskitCode, got.QiskitCode)
		assert.Equal(t, want.NumQubits, got.NumQubits)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	_, lexErr := lexer.Lex("x.dna", "$")
	require.Error(t, lexErr)
	toks, err := lexer.Lex("x.dna", "organism")
	require.NoError(t, err)
	_, parseErr := parser.Parse(toks)
	require.Error(t, parseErr)

	assert.Equal(t, compile.ErrorTypeLex, compile.Classify(lexErr))
	assert.Equal(t, compile.ErrorTypeParse, compile.Classify(parseErr))
	assert.Equal(t, compile.ErrorTypeParse, compile.Classify(fmt.Errorf("wrapped: %w", parseErr)))
	assert.Equal(t, compile.ErrorTypeInternal, compile.Classify(fmt.Errorf("boom")))
}

func TestCompileFile(t *testing.T) {
	t.Parallel()

	res := compile.CompileFile(filepath.Join(t.TempDir(), "missing.dna"))
	assert.False(t, res.Success)
	assert.Equal(t, compile.ErrorTypeInternal, res.ErrorType)
}
