package frontend

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ProjectFile is the name of the project manifest at a project root.
const ProjectFile = "dnalang.toml"

const (
	DefaultMain = "src/main.dna"
	DefaultOut  = "out"
)

type ProjectToml struct {
	Name    string `toml:"name" validate:"required,excludesall=/\\"`
	Version string `toml:"version" validate:"required"`
	Main    string `toml:"main" validate:"required,endswith=.dna"`
	Out     string `toml:"out" validate:"required"`
}

func HandleProjectToml(tomlContent string) (ProjectToml, error) {
	pt := ProjectToml{
		Main: DefaultMain,
		Out:  DefaultOut,
	}
	_, err := toml.Decode(tomlContent, &pt)
	if err != nil {
		return pt, err
	}
	validate := validator.New()
	if err := validate.Struct(pt); err != nil {
		return pt, err
	}
	return pt, nil
}

// LoadProjectToml reads and validates the manifest in dir.
func LoadProjectToml(dir string) (ProjectToml, error) {
	data, err := os.ReadFile(filepath.Join(dir, ProjectFile))
	if err != nil {
		return ProjectToml{}, err
	}
	pt, err := HandleProjectToml(string(data))
	if err != nil {
		return pt, fmt.Errorf("%s: %w", ProjectFile, err)
	}
	return pt, nil
}
