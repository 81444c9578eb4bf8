package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dnalang/dnalang/frontend/lexer"
)

type TokensCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file to tokenize."`
	JSON bool   `help:"Print tokens as JSON." name:"json"`
}

type tokenJSON struct {
	Type   lexer.Kind `json:"type"`
	Value  string     `json:"value"`
	Line   int        `json:"line"`
	Column int        `json:"column"`
}

func (t *TokensCmd) Run() error {
	code, err := os.ReadFile(t.File)
	if err != nil {
		return err
	}

	toks, err := lexer.Lex(t.File, string(code))
	if err != nil {
		return err
	}

	if t.JSON {
		out := make([]tokenJSON, len(toks))
		for i, tok := range toks {
			out[i] = tokenJSON{tok.Kind, tok.Value, tok.Line, tok.Column}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, tok := range toks {
		fmt.Fprintf(tw, "%d:%d\t%s\t%s\n", tok.Line, tok.Column, tok.Kind, tok.Value)
	}
	return tw.Flush()
}
