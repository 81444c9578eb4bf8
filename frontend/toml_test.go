package frontend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleProjectToml(t *testing.T) {
	t.Parallel()

	pt, err := HandleProjectToml(`
name = "swarm"
version = "1.2"
main = "src/swarm.dna"
out = "build"
`)
	require.NoError(t, err)
	assert.Equal(t, ProjectToml{Name: "swarm", Version: "1.2", Main: "src/swarm.dna", Out: "build"}, pt)
}

func TestHandleProjectTomlDefaults(t *testing.T) {
	t.Parallel()

	pt, err := HandleProjectToml("name = \"bell\"\nversion = \"0.1\"\n")
	require.NoError(t, err)
	assert.Equal(t, DefaultMain, pt.Main)
	assert.Equal(t, DefaultOut, pt.Out)
}

func TestHandleProjectTomlInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "version = \"0.1\"\n"},
		{"missing version", "name = \"bell\"\n"},
		{"slash in name", "name = \"a/b\"\nversion = \"0.1\"\n"},
		{"wrong main extension", "name = \"bell\"\nversion = \"0.1\"\nmain = \"src/main.py\"\n"},
		{"empty out", "name = \"bell\"\nversion = \"0.1\"\nout = \"\"\n"},
		{"malformed", "name = \n"},
		{"wrong type", "name = 3\nversion = \"0.1\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := HandleProjectToml(tt.content)
			assert.Error(t, err)
		})
	}
}

func TestLoadProjectToml(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadProjectToml(dir)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectFile), []byte("name = \"bell\"\nversion = \"0.1\"\n"), 0644))
	pt, err := LoadProjectToml(dir)
	require.NoError(t, err)
	assert.Equal(t, "bell", pt.Name)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectFile), []byte("version = \"0.1\"\n"), 0644))
	_, err = LoadProjectToml(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ProjectFile+":")
}
