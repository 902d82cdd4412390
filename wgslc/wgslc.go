// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package wgslc compiles WGSL shaders to SPIR-V in-process using the
// naga compiler, so a WGSL project needs no external toolchain.
package wgslc

import (
	"github.com/gogpu/naga"

	"github.com/gogpu/spvbuild"
)

// Options configures the naga pipeline.
type Options struct {
	// Debug includes debug info (OpName, OpLine) in the output.
	Debug bool

	// Validate runs IR validation before code generation.
	Validate bool
}

// Compiler implements spvbuild.Compiler for WGSL sources.
type Compiler struct {
	opts Options
}

var _ spvbuild.Compiler = (*Compiler)(nil)

// New returns a Compiler with validation enabled.
func New() *Compiler {
	return &Compiler{opts: Options{Validate: true}}
}

// NewWithOptions returns a Compiler with explicit options.
func NewWithOptions(opts Options) *Compiler {
	return &Compiler{opts: opts}
}

// Compile translates WGSL source to SPIR-V. WGSL declares its stage
// and entry points in source attributes, so kind and entryPoint are
// accepted for contract parity but not forwarded; every entry point in
// the module is compiled.
func (c *Compiler) Compile(source string, kind spvbuild.Kind, virtualPath, entryPoint string) ([]byte, error) {
	opts := naga.DefaultOptions()
	opts.Debug = c.opts.Debug
	opts.Validate = c.opts.Validate
	return naga.CompileWithOptions(source, opts)
}
