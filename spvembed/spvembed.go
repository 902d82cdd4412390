// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package spvembed gives consuming programs access to the SPIR-V
// artifacts a compilation run wrote, reinterpreted as the 32-bit words
// GPU APIs expect.
//
// The usual pattern embeds the build output directory and loads
// shaders by their original relative path:
//
//	//go:embed SPIR-V
//	var artifacts embed.FS
//
//	var blurShader = spvembed.MustLoad(artifacts, "shaders/post/blur.comp")
//
// An artifact whose byte length is not a multiple of 4 cannot be valid
// SPIR-V; MustLoad and MustWords treat that as a fatal configuration
// error and panic, surfacing the problem when the consuming program
// starts rather than at shader compile time.
package spvembed

import (
	"encoding/binary"
	"fmt"
	"io/fs"
	"path"

	"github.com/gogpu/spvbuild"
)

// Words reinterprets raw artifact bytes as little-endian 4-byte words.
func Words(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("spvembed: %d bytes is not a whole number of 4-byte SPIR-V words", len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words, nil
}

// MustWords is Words but panics on a malformed artifact.
func MustWords(b []byte) []uint32 {
	words, err := Words(b)
	if err != nil {
		panic(err)
	}
	return words
}

// Load reads the artifact for identifier from fsys. The identifier is
// the shader's original relative path ("shaders/post/blur.comp") or,
// equivalently, its derived flat name ("shaders__post__blur.comp");
// the ".spirv" suffix and "SPIR-V/" prefix are supplied here.
func Load(fsys fs.FS, identifier string) ([]uint32, error) {
	name := path.Join("SPIR-V", spvbuild.ArtifactName(identifier))
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("spvembed: %w", err)
	}
	return Words(b)
}

// MustLoad is Load but panics if the artifact is missing or malformed.
func MustLoad(fsys fs.FS, identifier string) []uint32 {
	words, err := Load(fsys, identifier)
	if err != nil {
		panic(err)
	}
	return words
}
