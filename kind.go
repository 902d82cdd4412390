// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spvbuild

// Kind identifies the pipeline stage a shader is compiled for.
type Kind uint8

const (
	// KindVertex is a vertex shader.
	KindVertex Kind = iota

	// KindFragment is a fragment shader.
	KindFragment

	// KindGeometry is a geometry shader.
	KindGeometry

	// KindCompute is a compute shader.
	KindCompute

	// KindTessControl is a tesselation control shader.
	KindTessControl

	// KindTessEvaluation is a tesselation evaluation shader.
	KindTessEvaluation

	// KindRayGeneration is a ray generation shader.
	KindRayGeneration

	// KindIntersection is a ray intersection shader.
	KindIntersection

	// KindAnyHit is a ray any-hit shader.
	KindAnyHit

	// KindClosestHit is a ray closest-hit shader.
	KindClosestHit

	// KindMiss is a ray miss shader.
	KindMiss

	// KindCallable is a ray callable shader.
	KindCallable

	// KindMesh is a mesh shader.
	KindMesh

	// KindTask is a task shader.
	KindTask

	// KindInfer asks the compiler to determine the stage from the
	// source contents.
	KindInfer
)

// String returns a human-readable stage name.
func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "Vertex"
	case KindFragment:
		return "Fragment"
	case KindGeometry:
		return "Geometry"
	case KindCompute:
		return "Compute"
	case KindTessControl:
		return "TessControl"
	case KindTessEvaluation:
		return "TessEvaluation"
	case KindRayGeneration:
		return "RayGeneration"
	case KindIntersection:
		return "Intersection"
	case KindAnyHit:
		return "AnyHit"
	case KindClosestHit:
		return "ClosestHit"
	case KindMiss:
		return "Miss"
	case KindCallable:
		return "Callable"
	case KindMesh:
		return "Mesh"
	case KindTask:
		return "Task"
	case KindInfer:
		return "Infer"
	default:
		return "Unknown"
	}
}

// GlslangStage returns the stage token understood by glslangValidator's
// -S flag, or "" for KindInfer and unknown kinds.
func (k Kind) GlslangStage() string {
	switch k {
	case KindVertex:
		return "vert"
	case KindFragment:
		return "frag"
	case KindGeometry:
		return "geom"
	case KindCompute:
		return "comp"
	case KindTessControl:
		return "tesc"
	case KindTessEvaluation:
		return "tese"
	case KindRayGeneration:
		return "rgen"
	case KindIntersection:
		return "rint"
	case KindAnyHit:
		return "rahit"
	case KindClosestHit:
		return "rchit"
	case KindMiss:
		return "rmiss"
	case KindCallable:
		return "rcall"
	case KindMesh:
		return "mesh"
	case KindTask:
		return "task"
	default:
		return ""
	}
}

// KindForExtension maps a file extension (without the leading dot) to
// the stage kind requested from the compiler. The second return value
// is false for extensions that do not name a shader; callers treat
// those files as not being shaders at all rather than as errors.
func KindForExtension(ext string) (Kind, bool) {
	switch ext {
	case "vert", "vs":
		return KindVertex, true
	case "frag", "fs":
		return KindFragment, true
	case "gs", "geom":
		return KindGeometry, true
	case "comp":
		return KindCompute, true
	case "tesc":
		return KindTessControl, true
	case "tese":
		return KindTessEvaluation, true
	case "rgen":
		return KindRayGeneration, true
	case "rint":
		return KindIntersection, true
	case "rahit":
		return KindAnyHit, true
	case "rchit":
		return KindClosestHit, true
	case "rmiss":
		return KindMiss, true
	case "rcall":
		return KindCallable, true
	case "mesh":
		return KindMesh, true
	case "task":
		return KindTask, true
	case "glsl", "wgsl":
		return KindInfer, true
	default:
		return 0, false
	}
}
