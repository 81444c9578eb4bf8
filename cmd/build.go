package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dnalang/dnalang/compile"
	"github.com/dnalang/dnalang/frontend"
)

type BuildCmd struct {
	Path string `help:"Path to the project directory." short:"p" default:"."`
	JSON bool   `help:"Also write the full compile result as JSON." name:"json"`
}

func (b *BuildCmd) Run() error {
	absPath, err := filepath.Abs(b.Path)
	if err != nil {
		return err
	}

	config, err := frontend.LoadProjectToml(absPath)
	if err != nil {
		return err
	}

	res := compile.CompileFile(filepath.Join(absPath, config.Main))
	if !res.Success {
		return fmt.Errorf("%s: %s: %s", config.Main, res.ErrorType, res.Error)
	}

	name := strings.ToLower(config.Name)

	outDir := filepath.Join(absPath, config.Out)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	pyPath := filepath.Join(outDir, name+".py")
	if err := os.WriteFile(pyPath, []byte(res.QiskitCode+"\n"), 0644); err != nil {
		return err
	}

	if b.JSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(outDir, name+".json"), data, 0644); err != nil {
			return err
		}
	}

	log.Printf("built %s (%d organisms, %d qubits)", pyPath, len(res.Ast.Organisms), res.NumQubits)
	return nil
}
