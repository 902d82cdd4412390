package wgslc

import (
	"testing"

	"github.com/gogpu/spvbuild"
)

// TestCompileVertexShader compiles a minimal WGSL vertex shader and
// checks the SPIR-V header.
func TestCompileVertexShader(t *testing.T) {
	source := `
@vertex
fn main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`
	c := NewWithOptions(Options{Validate: false})
	blob, err := c.Compile(source, spvbuild.KindInfer, "shaders/tri.wgsl", spvbuild.EntryPoint)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if len(blob) < 20 {
		t.Fatal("SPIR-V output too short (should have at least 5-word header)")
	}
	magic := uint32(blob[0]) | uint32(blob[1])<<8 | uint32(blob[2])<<16 | uint32(blob[3])<<24
	if magic != 0x07230203 {
		t.Errorf("Invalid SPIR-V magic: got 0x%08x, want 0x07230203", magic)
	}

	t.Logf("Generated %d bytes of SPIR-V", len(blob))
}

// TestCompileRejectsBrokenSource checks that a syntax error comes back
// as a diagnostic, not a panic.
func TestCompileRejectsBrokenSource(t *testing.T) {
	c := New()
	_, err := c.Compile("@vertex fn main( {", spvbuild.KindInfer, "shaders/bad.wgsl", spvbuild.EntryPoint)
	if err == nil {
		t.Fatal("expected a diagnostic for broken WGSL")
	}
	t.Logf("diagnostic: %v", err)
}

// TestCompileRejectsGLSL checks that GLSL text handed to the WGSL
// backend fails cleanly.
func TestCompileRejectsGLSL(t *testing.T) {
	source := "#version 450\nvoid main() {}\n"
	c := New()
	if _, err := c.Compile(source, spvbuild.KindVertex, "shaders/a.vert", spvbuild.EntryPoint); err == nil {
		t.Fatal("expected a diagnostic for GLSL source")
	}
}
