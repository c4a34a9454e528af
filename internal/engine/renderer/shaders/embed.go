// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SolidVertexShader transforms positions and normals.
//
//go:embed solid.vert
var SolidVertexShader string

// SolidFragmentShader applies the material colour with one directional light.
//
//go:embed solid.frag
var SolidFragmentShader string
