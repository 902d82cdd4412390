package spvbuild

import (
	"path/filepath"
	"strings"
)

// ArtifactName derives the flat output filename for a compiled shader
// from its source path: the ordinary path components joined with "__"
// plus a ".spirv" suffix. Root markers, "." and ".." are dropped, so
// "shaders/post/blur.comp" becomes "shaders__post__blur.comp.spirv".
//
// Distinct relative paths always map to distinct names, which keeps
// shaders from nested directories from colliding in the flat output
// directory.
func ArtifactName(path string) string {
	var b strings.Builder
	for i, c := range normalComponents(path) {
		if i > 0 {
			b.WriteString("__")
		}
		b.WriteString(c)
	}
	b.WriteString(".spirv")
	return b.String()
}

// normalComponents splits path into its ordinary components, excluding
// the volume name, separators, and the "." and ".." markers. The path
// is deliberately not cleaned first: "a/../b" keeps both a and b, the
// same components a directory walk would have reported.
func normalComponents(path string) []string {
	path = strings.TrimPrefix(path, filepath.VolumeName(path))
	raw := strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' })

	parts := raw[:0]
	for _, c := range raw {
		if c == "." || c == ".." {
			continue
		}
		parts = append(parts, c)
	}
	return parts
}
