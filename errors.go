// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spvbuild

import (
	"fmt"
	"io"
)

// Error is a single recorded failure from a compilation run. It has
// exactly two implementations, IOError and CompileError; failures are
// accumulated in encounter order and reported together after every
// file has been attempted.
type Error interface {
	error
	runError()
}

// IOError records a filesystem failure while handling one shader:
// reading the source, creating the output directory, or writing the
// artifact.
type IOError struct {
	// Path is the shader the failure was recorded for.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("IO error: %v", e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) runError() {}

// CompileError records a shader the compiler rejected.
type CompileError struct {
	// Path is the shader the compiler rejected.
	Path string

	// Diag is the compiler's own diagnostic, opaque to this package.
	Diag error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("Error compiling shader at %q: %v", e.Path, e.Diag)
}

func (e *CompileError) Unwrap() error { return e.Diag }

func (e *CompileError) runError() {}

// Report writes every failure to w, one per line, in the order they
// were recorded.
func Report(w io.Writer, errs []Error) {
	for _, e := range errs {
		fmt.Fprintln(w, e.Error())
	}
}
