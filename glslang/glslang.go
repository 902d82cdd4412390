// Package glslang compiles GLSL shaders to SPIR-V by invoking the
// glslangValidator reference compiler. The validator must be on PATH
// (or named explicitly via Bin); source text is piped over stdin and
// the binary is staged through a temporary file, since the validator
// cannot write SPIR-V to stdout.
package glslang

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gogpu/spvbuild"
)

// DefaultBin is the validator binary looked up on PATH.
const DefaultBin = "glslangValidator"

// Compiler implements spvbuild.Compiler by shelling out to the GLSL
// reference compiler.
type Compiler struct {
	// Bin is the validator binary to invoke.
	Bin string

	// WorkDir is where temporary outputs are staged. Empty means the
	// system temp directory.
	WorkDir string
}

var _ spvbuild.Compiler = (*Compiler)(nil)

// New returns a Compiler that invokes glslangValidator from PATH.
func New() *Compiler {
	return &Compiler{Bin: DefaultBin}
}

// Compile pipes source to the validator and reads back the SPIR-V it
// wrote. For spvbuild.KindInfer the stage is taken from a
// "#pragma shader_stage(...)" line in the source.
func (c *Compiler) Compile(source string, kind spvbuild.Kind, virtualPath, entryPoint string) ([]byte, error) {
	stage := kind.GlslangStage()
	if stage == "" {
		var err error
		stage, err = sniffStage(source)
		if err != nil {
			return nil, err
		}
	}

	out, err := os.CreateTemp(c.WorkDir, "spvbuild-*.spv")
	if err != nil {
		return nil, fmt.Errorf("staging output: %w", err)
	}
	outPath := out.Name()
	out.Close()
	defer os.Remove(outPath)

	cmd := exec.Command(c.Bin, c.args(stage, virtualPath, entryPoint, outPath)...)
	cmd.Stdin = strings.NewReader(source)
	combined, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s\nfailed to run %v: %w", strings.TrimSpace(string(combined)), cmd.Args, err)
	}

	blob, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read output %q: %w", outPath, err)
	}
	return blob, nil
}

// args builds the argument list for one invocation. Separate from
// Compile so it can be tested without the validator installed.
func (c *Compiler) args(stage, virtualPath, entryPoint, outPath string) []string {
	args := []string{
		"--stdin",
		"-I" + filepath.Dir(virtualPath),
		"-V", // target Vulkan, emit SPIR-V
		"-S", stage,
		"-o", outPath,
	}
	if entryPoint != "" && entryPoint != "main" {
		args = append(args, "-e", entryPoint)
	}
	return args
}

// pragmaStages maps the shader_stage pragma names (the shaderc
// convention for .glsl files) to validator stage tokens.
var pragmaStages = map[string]string{
	"vertex":      "vert",
	"fragment":    "frag",
	"geometry":    "geom",
	"compute":     "comp",
	"tesscontrol": "tesc",
	"tesseval":    "tese",
	"raygen":      "rgen",
	"intersect":   "rint",
	"anyhit":      "rahit",
	"closesthit":  "rchit",
	"miss":        "rmiss",
	"callable":    "rcall",
	"mesh":        "mesh",
	"task":        "task",
}

// sniffStage scans source for a "#pragma shader_stage(<name>)" line.
func sniffStage(source string) (string, error) {
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#pragma") {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, "#pragma"))
		if !strings.HasPrefix(rest, "shader_stage") {
			continue
		}
		lp := strings.IndexByte(rest, '(')
		rp := strings.IndexByte(rest, ')')
		if lp < 0 || rp < lp {
			return "", fmt.Errorf("malformed shader_stage pragma: %q", line)
		}
		name := strings.TrimSpace(rest[lp+1 : rp])
		stage, ok := pragmaStages[name]
		if !ok {
			return "", fmt.Errorf("unknown shader stage %q in pragma", name)
		}
		return stage, nil
	}
	return "", fmt.Errorf("cannot infer shader stage: no #pragma shader_stage(...) in source")
}
