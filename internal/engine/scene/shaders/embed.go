// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for terrain rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain rendering.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// WaterVertexShader is the vertex shader for water rendering.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for water rendering.
//
//go:embed water.frag
var WaterFragmentShader string

// InstanceVertexShader is the vertex shader for instanced collectibles.
//
//go:embed instance.vert
var InstanceVertexShader string

// InstanceFragmentShader is the fragment shader for instanced collectibles.
//
//go:embed instance.frag
var InstanceFragmentShader string

// SunVertexShader is the vertex shader for the sun billboard.
//
//go:embed sun.vert
var SunVertexShader string

// SunFragmentShader is the fragment shader for the sun billboard.
//
//go:embed sun.frag
var SunFragmentShader string

// PostVertexShader is the vertex shader for the fullscreen post pass.
//
//go:embed post.vert
var PostVertexShader string

// PostFragmentShader is the fragment shader for the fullscreen post pass.
//
//go:embed post.frag
var PostFragmentShader string

// TextVertexShader is the vertex shader for the text overlay.
//
//go:embed text.vert
var TextVertexShader string

// TextFragmentShader is the fragment shader for the text overlay.
//
//go:embed text.frag
var TextFragmentShader string
