package spvbuild

// EntryPoint is the entry point name requested for every shader in a
// run. No preprocessor definitions are passed.
const EntryPoint = "main"

// Compiler translates shader source text into a SPIR-V binary. The
// virtual path is display-only: it names the shader in diagnostics and
// is never opened by the compiler. A returned error is the compiler's
// diagnostic for the shader and is reported verbatim.
//
// The wgslc and glslang packages provide implementations.
type Compiler interface {
	Compile(source string, kind Kind, virtualPath, entryPoint string) ([]byte, error)
}
