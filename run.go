// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spvbuild

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// OutDirEnv is the environment variable consulted for the build output
// directory when none is configured explicitly.
const OutDirEnv = "OUT_DIR"

// spirvDirName is the subdirectory of the output directory that
// artifacts are written to.
const spirvDirName = "SPIR-V"

// Run describes one batch compilation: the directories to search for
// shaders and how deep to search them. Configure it with the chained
// setters, then call Execute or Run exactly once.
type Run struct {
	dirs     []string
	maxDepth int
	outDir   string
	done     bool
}

// New returns a run that searches dir for shaders. The depth bound
// starts at 0, which visits nothing; call MaxDepth before executing.
func New(dir string) *Run {
	return &Run{dirs: []string{dir}}
}

// WithDir adds a directory which will be searched for shaders. The
// directory does not have to exist yet; a missing root is reported as
// an I/O failure when the run executes.
func (r *Run) WithDir(dir string) *Run {
	r.dirs = append(r.dirs, dir)
	return r
}

// MaxDepth sets how many directory levels below each root are
// searched, uniformly for every root. A file directly inside a root is
// one level below it, so MaxDepth(1) compiles a root's immediate files
// and MaxDepth(0) visits nothing at all. The roots themselves are
// never classified.
func (r *Run) MaxDepth(depth int) *Run {
	r.maxDepth = depth
	return r
}

// OutputDir sets where the SPIR-V subdirectory is created. When unset,
// the OUT_DIR environment variable is used, falling back to the
// current directory.
func (r *Run) OutputDir(dir string) *Run {
	r.outDir = dir
	return r
}

// Execute looks for shaders under every configured root and compiles
// them with c, writing each binary to <output>/SPIR-V under its
// derived name. Existing artifacts are overwritten.
//
// A failure is terminal for its file but never for the batch: every
// classified file is attempted, and all failures come back together in
// encounter order. An empty result means every classified shader
// compiled and was written out.
//
// Execute consumes the run; calling it a second time panics.
func (r *Run) Execute(c Compiler) []Error {
	if r.done {
		panic("spvbuild: run already executed")
	}
	r.done = true

	outDir := r.outDir
	if outDir == "" {
		outDir = os.Getenv(OutDirEnv)
	}
	if outDir == "" {
		outDir = "."
	}
	spirvDir := filepath.Join(outDir, spirvDirName)

	var errs []Error
	for _, dir := range r.dirs {
		errs = append(errs, r.searchDir(dir, spirvDir, c)...)
	}
	return errs
}

// Run executes the batch and, if anything failed, prints every failure
// to stderr followed by a summary line, then terminates the process
// with a nonzero status. A fully successful run is silent; the output
// files are the signal.
func (r *Run) Run(c Compiler) {
	errs := r.Execute(c)
	if len(errs) == 0 {
		return
	}
	Report(os.Stderr, errs)
	fmt.Fprintf(os.Stderr, "%d errors were encountered while attempting to compile shaders.\n", len(errs))
	os.Exit(1)
}

func (r *Run) searchDir(root, spirvDir string, c Compiler) []Error {
	var errs []Error
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Missing or unreadable entries are recorded like any
			// other filesystem failure and the walk moves on.
			errs = append(errs, &IOError{Path: path, Err: err})
			return nil
		}
		depth := entryDepth(root, path)
		if d.IsDir() {
			if depth >= r.maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if depth == 0 {
			// The root itself was a file, not a directory to search.
			return nil
		}

		name := d.Name()
		dot := strings.LastIndexByte(name, '.')
		if dot <= 0 {
			// No extension; a lone leading dot is a hidden file, not
			// an extension.
			return nil
		}
		kind, ok := KindForExtension(name[dot+1:])
		if !ok {
			return nil
		}
		if e := compileOne(c, path, kind, spirvDir); e != nil {
			errs = append(errs, e)
		}
		return nil
	})
	return errs
}

// compileOne takes one classified shader through read, compile, and
// write. It returns at most one failure.
func compileOne(c Compiler, path string, kind Kind, spirvDir string) Error {
	src, err := os.ReadFile(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(src) {
		return &IOError{Path: path, Err: fmt.Errorf("%s: shader source is not valid UTF-8", path)}
	}

	blob, err := c.Compile(string(src), kind, path, EntryPoint)
	if err != nil {
		return &CompileError{Path: path, Diag: err}
	}

	if err := os.Mkdir(spirvDir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return &IOError{Path: path, Err: err}
	}
	if err := os.WriteFile(filepath.Join(spirvDir, ArtifactName(path)), blob, 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// entryDepth reports how many levels below root the walked path is:
// 0 for the root itself, 1 for entries directly inside it.
func entryDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
