package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dnalang/dnalang/frontend/sema"
)

type CheckCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file to check."`
}

func (c *CheckCmd) Run() error {
	code, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	analysis := sema.Analyze(c.File, string(code))
	for _, diag := range analysis.Diags {
		start := diag.Range.Start
		fmt.Printf("%s:%d:%d: %s\n", c.File, start.Line+1, start.Character+1, diag.Message)
	}
	if analysis.Err != nil {
		return errors.New("check failed")
	}

	fmt.Printf("%s: %d organisms, %d qubits\n", c.File, len(analysis.Ast.Organisms), analysis.Qubits)
	return nil
}
