// Package compile runs the whole pipeline over one source string and packs
// the outcome into the response shape served to clients.
package compile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	codegen "github.com/dnalang/dnalang/backend"
	"github.com/dnalang/dnalang/frontend/ast"
	"github.com/dnalang/dnalang/frontend/lexer"
	"github.com/dnalang/dnalang/frontend/parser"
	"github.com/dnalang/dnalang/frontend/sema"
)

// TokenPreviewLimit caps the number of tokens echoed back on success.
const TokenPreviewLimit = 50

// DefaultSource labels spans when the source has no file name.
const DefaultSource = "<input>"

type ErrorType string

const (
	ErrorTypeLex      ErrorType = "LexError"
	ErrorTypeParse    ErrorType = "ParseError"
	ErrorTypeInternal ErrorType = "InternalError"
)

type TokenPreview struct {
	Type  lexer.Kind `json:"type"`
	Value string     `json:"value"`
	Line  int        `json:"line"`
}

// Result is either a success (script, qubits, tree, tokens) or a failure
// (error, error type); the two never mix.
type Result struct {
	Success    bool
	QiskitCode string
	NumQubits  int
	Ast        *ast.Program
	Tokens     []TokenPreview
	Error      string
	ErrorType  ErrorType
}

type successBody struct {
	Success    bool           `json:"success"`
	QiskitCode string         `json:"qiskit_code"`
	NumQubits  int            `json:"num_qubits"`
	Ast        *ast.Program   `json:"ast"`
	Tokens     []TokenPreview `json:"tokens"`
}

type failureBody struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	ErrorType ErrorType `json:"error_type"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Success {
		tokens := r.Tokens
		if tokens == nil {
			tokens = []TokenPreview{}
		}
		return json.Marshal(successBody{true, r.QiskitCode, r.NumQubits, r.Ast, tokens})
	}
	return json.Marshal(failureBody{false, r.Error, r.ErrorType})
}

// Compile is safe for concurrent use; it holds no state between calls.
func Compile(source string) Result {
	return CompileNamed(DefaultSource, source)
}

// CompileNamed is Compile with a source name carried into error spans.
func CompileNamed(src, source string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic: %v\n%s", r, debug.Stack())
			res = Failure(fmt.Errorf("%v", r))
		}
	}()

	tokens, err := lexer.Lex(src, source)
	if err != nil {
		return Failure(err)
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		return Failure(err)
	}

	code := codegen.Generate(prog)
	numQubits := sema.CountQubits(prog)

	return Result{
		Success:    true,
		QiskitCode: code,
		NumQubits:  numQubits,
		Ast:        prog,
		Tokens:     Preview(tokens),
	}
}

// CompileFile reads path and compiles its contents.
func CompileFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Failure(err)
	}
	return CompileNamed(path, string(data))
}

// Preview reduces the first TokenPreviewLimit tokens to type, value and line.
func Preview(tokens []lexer.Token) []TokenPreview {
	n := min(len(tokens), TokenPreviewLimit)
	out := make([]TokenPreview, n)
	for i, tok := range tokens[:n] {
		out[i] = TokenPreview{Type: tok.Kind, Value: tok.Value, Line: tok.Line}
	}
	return out
}

// Failure wraps err into a failed Result, classifying it by its type.
func Failure(err error) Result {
	return Result{
		Success:   false,
		Error:     err.Error(),
		ErrorType: Classify(err),
	}
}

func Classify(err error) ErrorType {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return ErrorTypeLex
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return ErrorTypeParse
	}
	return ErrorTypeInternal
}
