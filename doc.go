// Package spvbuild discovers shader source files in a project tree,
// compiles them to SPIR-V, and writes the binaries to a build output
// directory so they can be embedded into a Go binary later.
//
// A batch is described by a Run: one or more root directories plus a
// uniform depth bound. Executing the run walks every root, classifies
// each file by extension, hands classified files to a Compiler, and
// writes each compiled binary under <output>/SPIR-V with a name derived
// from the source path. Failures never stop the batch; they are
// collected and reported together once every file has been attempted.
//
// Run recognizes the following extensions:
//
//	.vert .vs  — Vertex Shader
//	.frag .fs  — Fragment Shader
//	.gs .geom  — Geometry Shader
//	.comp      — Compute Shader
//	.tesc      — Tesselation Control Shader
//	.tese      — Tesselation Evaluation Shader
//	.rgen      — Ray Generation Shader
//	.rint      — Ray Intersection Shader
//	.rahit     — Ray Any Hit Shader
//	.rchit     — Ray Closest Hit Shader
//	.rmiss     — Ray Miss Shader
//	.rcall     — Ray Callable Shader
//	.mesh      — Mesh Shader
//	.task      — Task Shader
//	.glsl      — stage inferred from source contents
//	.wgsl      — stage inferred from source contents
//
// Anything else is silently ignored, which is how non-shader files in
// the searched directories are skipped.
//
// Example usage from a go:generate step:
//
//	spvbuild.New("shaders").
//		WithDir("examples/shaders").
//		MaxDepth(3).
//		Run(glslang.New())
//
// The wgslc package provides a pure Go Compiler for WGSL sources built
// on github.com/gogpu/naga; the glslang package wraps the GLSL
// reference compiler. The spvembed package is the consumption side: it
// reinterprets an embedded artifact as the 32-bit words GPU APIs
// expect.
package spvbuild
