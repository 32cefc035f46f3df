package shader

import _ "embed"

// ColorVertexShader and ColorFragmentShader shade meshes by the scene lights.
//
//go:embed glsl/color.vert
var ColorVertexShader string

//go:embed glsl/color.frag
var ColorFragmentShader string

// DebugVertexShader and DebugFragmentShader draw flat-colored geometry such
// as light markers and selection boxes.
//
//go:embed glsl/debug.vert
var DebugVertexShader string

//go:embed glsl/debug.frag
var DebugFragmentShader string
