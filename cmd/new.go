package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dnalang/dnalang/frontend"
	"github.com/dnalang/dnalang/samples"
)

type NewCmd struct {
	Name string `arg:"" required:"" help:"Name of the new project."`
}

func (n *NewCmd) Run() error {
	projectDir := n.Name
	if _, err := os.Stat(projectDir); err == nil {
		return fmt.Errorf("%s already exists", projectDir)
	}

	tomlContent := "name = \"" + filepath.Base(n.Name) + "\"\nversion = \"0.1\"\n"
	if _, err := frontend.HandleProjectToml(tomlContent); err != nil {
		return fmt.Errorf("invalid project name %q: %w", n.Name, err)
	}

	if err := os.MkdirAll(filepath.Join(projectDir, "src"), 0755); err != nil {
		return err
	}

	// .gitignore
	gitignoreContent := frontend.DefaultOut + "/\n"
	if err := os.WriteFile(filepath.Join(projectDir, ".gitignore"), []byte(gitignoreContent), 0644); err != nil {
		return err
	}

	// dnalang.toml
	if err := os.WriteFile(filepath.Join(projectDir, frontend.ProjectFile), []byte(tomlContent), 0644); err != nil {
		return err
	}

	// src/main.dna
	if err := os.WriteFile(filepath.Join(projectDir, filepath.FromSlash(frontend.DefaultMain)), []byte(samples.Starter()), 0644); err != nil {
		return err
	}

	return nil
}
