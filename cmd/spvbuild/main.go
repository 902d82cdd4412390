// Command spvbuild compiles every shader found under the configured
// directories to SPIR-V, for embedding into a Go binary via the
// spvembed package.
//
// Usage:
//
//	spvbuild [options]
//
// Examples:
//
//	spvbuild -d shaders -depth 3              # compile shaders/ up to 3 levels deep
//	spvbuild -d shaders -d fx -o build        # two roots, artifacts under build/SPIR-V
//	spvbuild -c shaders.yaml                  # roots and depth from a manifest
//	spvbuild -d shaders -depth 2 -watch       # recompile on change (linux)
//
// The output directory defaults to $OUT_DIR (a .env file is honored),
// falling back to the current directory. WGSL sources are compiled
// in-process; everything else goes through glslangValidator.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gogpu/spvbuild"
	"github.com/gogpu/spvbuild/glslang"
	"github.com/gogpu/spvbuild/logx"
	"github.com/gogpu/spvbuild/manifest"
	"github.com/gogpu/spvbuild/watch"
	"github.com/gogpu/spvbuild/wgslc"
)

const spvbuildVersion = "0.1.0-dev"

// dirList collects repeated -d flags in order.
type dirList []string

func (d *dirList) String() string { return strings.Join(*d, ",") }

func (d *dirList) Set(v string) error {
	*d = append(*d, v)
	return nil
}

var (
	dirs         dirList
	manifestPath = flag.String("c", "", "manifest file (mutually exclusive with -d)")
	depth        = flag.Int("depth", 1, "how many directory levels below each root to search")
	outDir       = flag.String("o", "", "build output directory (default: $OUT_DIR, then .)")
	watchMode    = flag.Bool("watch", false, "recompile whenever a shader changes")
	verbose      = flag.Bool("v", false, "log every compiled shader")
	version      = flag.Bool("version", false, "print version")
)

func main() {
	flag.Var(&dirs, "d", "directory to search for shaders (repeatable)")
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("spvbuild version %s\n", spvbuildVersion)
		return
	}

	_ = godotenv.Load()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(logx.NewHandler(os.Stderr, level))
	slog.SetDefault(log)

	roots, maxDepth, out, watching, err := configure()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(1)
	}

	if out != "" {
		if err := os.MkdirAll(out, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}

	comp := &autoCompiler{
		wgsl: wgslc.New(),
		glsl: glslang.New(),
		log:  log,
	}

	makeRun := func() *spvbuild.Run {
		r := spvbuild.New(roots[0])
		for _, dir := range roots[1:] {
			r = r.WithDir(dir)
		}
		r = r.MaxDepth(maxDepth)
		if out != "" {
			r = r.OutputDir(out)
		}
		return r
	}

	if watching {
		w := &watch.Watcher{
			Dirs:     roots,
			MaxDepth: maxDepth,
			Log:      log,
			Rebuild: func() {
				errs := makeRun().Execute(comp)
				if len(errs) > 0 {
					spvbuild.Report(os.Stderr, errs)
					log.Warn("shader build failed", "errors", len(errs))
					return
				}
				log.Info("shaders compiled")
			},
		}
		if err := w.Watch(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Prints every failure and exits nonzero if anything failed.
	makeRun().Run(comp)
}

// configure merges the manifest and flag surfaces into one run
// description.
func configure() (roots []string, maxDepth int, out string, watching bool, err error) {
	if *manifestPath != "" {
		if len(dirs) > 0 {
			return nil, 0, "", false, fmt.Errorf("-c and -d are mutually exclusive")
		}
		m, err := manifest.Parse(*manifestPath)
		if err != nil {
			return nil, 0, "", false, err
		}
		out = m.OutputDir
		if *outDir != "" {
			out = *outDir
		}
		return m.Directories, m.MaxDepth, out, m.Watch || *watchMode, nil
	}

	if len(dirs) == 0 {
		return nil, 0, "", false, fmt.Errorf("no shader directories specified")
	}
	if *depth < 0 {
		return nil, 0, "", false, fmt.Errorf("-depth cannot be negative")
	}
	return dirs, *depth, *outDir, *watchMode, nil
}

// autoCompiler routes WGSL sources to the in-process naga backend and
// everything else to the GLSL reference compiler.
type autoCompiler struct {
	wgsl spvbuild.Compiler
	glsl spvbuild.Compiler
	log  *slog.Logger
}

func (c *autoCompiler) Compile(source string, kind spvbuild.Kind, virtualPath, entryPoint string) ([]byte, error) {
	c.log.Debug("compiling shader", "path", virtualPath, "kind", kind.String())
	if strings.HasSuffix(virtualPath, ".wgsl") {
		return c.wgsl.Compile(source, kind, virtualPath, entryPoint)
	}
	return c.glsl.Compile(source, kind, virtualPath, entryPoint)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: spvbuild [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  spvbuild -d shaders -depth 3     Compile shaders/ three levels deep\n")
	fmt.Fprintf(os.Stderr, "  spvbuild -c shaders.yaml         Use a manifest\n")
	fmt.Fprintf(os.Stderr, "  spvbuild -d shaders -watch       Recompile on change\n")
}
