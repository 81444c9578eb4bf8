// Package samples embeds example organism sources. They seed new projects
// and double as compiler fixtures.
package samples

import (
	"embed"
	"io/fs"
	"path"
	"sort"
)

//go:embed organisms
var FS embed.FS

// StarterName is the sample copied into freshly created projects.
const StarterName = "bell.dna"

var Files map[string]string = func() map[string]string {
	out := make(map[string]string)

	err := fs.WalkDir(FS, "organisms", func(p string, d fs.DirEntry, err error) error {
		if err != nil { // propagate unexpected I/O problems
			return err
		}
		if d.IsDir() || path.Ext(p) != ".dna" {
			return nil
		}
		data, err := FS.ReadFile(p)
		if err != nil {
			return err
		}
		out[path.Base(p)] = string(data)
		return nil
	})
	if err != nil {
		panic(err)
	}
	return out
}()

// Names returns the sample file names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Files))
	for name := range Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Starter() string {
	return Files[StarterName]
}
