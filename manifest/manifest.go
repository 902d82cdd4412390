// Package manifest loads batch compilation runs from a YAML file, so a
// project can check in a shaders.yaml instead of spelling out flags in
// every build script.
//
// A manifest looks like:
//
//	directories:
//	  - shaders
//	  - examples/shaders
//	max_depth: 3
//	output_dir: build
//	watch: false
//
// Relative paths are resolved against the manifest's own directory,
// not the current working directory.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "github.com/goccy/go-yaml"

	"github.com/gogpu/spvbuild"
)

// Manifest describes one batch compilation.
type Manifest struct {
	Directories []string `yaml:"directories"`
	MaxDepth    int      `yaml:"max_depth"`
	OutputDir   string   `yaml:"output_dir"`
	Watch       bool     `yaml:"watch"`
}

// Parse reads and validates the manifest at filename. Relative
// directories are rewritten to be relative to the manifest file.
func Parse(filename string) (*Manifest, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer f.Close()

	m := &Manifest{}
	if err := yaml.NewDecoder(f).Decode(m); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", filename, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s is invalid: %w", filename, err)
	}

	base, err := filepath.Abs(filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	for i, dir := range m.Directories {
		m.Directories[i] = resolve(base, dir)
	}
	if m.OutputDir != "" {
		m.OutputDir = resolve(base, m.OutputDir)
	}
	return m, nil
}

// Validate checks the manifest before any filesystem work happens.
// Directory existence is deliberately not checked here; a missing root
// surfaces as an I/O failure when the run executes.
func (m *Manifest) Validate() error {
	if len(m.Directories) < 1 {
		return fmt.Errorf("at least one directory should be listed")
	}
	for i, dir := range m.Directories {
		if dir == "" {
			return fmt.Errorf("directory %d is empty", i)
		}
	}
	if m.MaxDepth < 0 {
		return fmt.Errorf("max_depth cannot be negative")
	}
	return nil
}

// Run builds the configured compilation run.
func (m *Manifest) Run() *spvbuild.Run {
	r := spvbuild.New(m.Directories[0])
	for _, dir := range m.Directories[1:] {
		r = r.WithDir(dir)
	}
	r = r.MaxDepth(m.MaxDepth)
	if m.OutputDir != "" {
		r = r.OutputDir(m.OutputDir)
	}
	return r
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
