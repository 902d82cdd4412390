package glslang

import (
	"strings"
	"testing"

	"github.com/gogpu/spvbuild"
)

func TestArgs(t *testing.T) {
	c := New()
	args := c.args("frag", "shaders/post/tone.frag", "main", "/tmp/out.spv")

	want := []string{"--stdin", "-Ishaders/post", "-V", "-S", "frag", "-o", "/tmp/out.spv"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestArgsNonDefaultEntryPoint(t *testing.T) {
	c := New()
	args := c.args("vert", "a.vert", "vs_main", "out.spv")
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-e vs_main") {
		t.Errorf("args %v should request entry point vs_main", args)
	}
}

func TestSniffStage(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stage  string
	}{
		{"vertex", "#pragma shader_stage(vertex)\nvoid main() {}", "vert"},
		{"fragment", "// header\n#pragma shader_stage(fragment)\n", "frag"},
		{"compute with spaces", "#pragma   shader_stage( compute )\n", "comp"},
		{"raygen", "#pragma shader_stage(raygen)", "rgen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, err := sniffStage(tt.source)
			if err != nil {
				t.Fatalf("sniffStage: %v", err)
			}
			if stage != tt.stage {
				t.Errorf("stage = %q, want %q", stage, tt.stage)
			}
		})
	}
}

func TestSniffStageFailures(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"no pragma", "#version 450\nvoid main() {}"},
		{"unknown stage", "#pragma shader_stage(kernel)"},
		{"malformed", "#pragma shader_stage vertex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sniffStage(tt.source); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// TestCompileMissingBinary checks that an unavailable validator comes
// back as an ordinary diagnostic.
func TestCompileMissingBinary(t *testing.T) {
	c := &Compiler{Bin: "spvbuild-test-no-such-binary"}
	_, err := c.Compile("void main() {}", spvbuild.KindVertex, "a.vert", spvbuild.EntryPoint)
	if err == nil {
		t.Fatal("expected an error when the validator binary is missing")
	}
}

// TestCompileInferWithoutPragma checks that Infer without a stage
// pragma fails before any process is spawned.
func TestCompileInferWithoutPragma(t *testing.T) {
	c := &Compiler{Bin: "spvbuild-test-no-such-binary"}
	_, err := c.Compile("void main() {}", spvbuild.KindInfer, "a.glsl", spvbuild.EntryPoint)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "shader_stage") {
		t.Errorf("error should name the missing pragma: %v", err)
	}
}
