// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader transforms generated meshes for the lit pass.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader applies directional light, specular and shadows.
//
//go:embed lit.frag
var LitFragmentShader string

// DepthVertexShader renders into the shadow map.
//
//go:embed depth.vert
var DepthVertexShader string

// DepthFragmentShader is empty; only depth is written.
//
//go:embed depth.frag
var DepthFragmentShader string

// LineVertexShader draws debug lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader draws debug lines in a flat color.
//
//go:embed line.frag
var LineFragmentShader string
