// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BasicVertexShader is the vertex shader for lit, textured bodies.
//
//go:embed basic.vert
var BasicVertexShader string

// BasicFragmentShader is the fragment shader for lit, textured bodies.
//
//go:embed basic.frag
var BasicFragmentShader string

// SkyboxVertexShader is the vertex shader for the background cubemap.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader is the fragment shader for the background cubemap.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
