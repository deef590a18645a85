package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderManager owns the single program every batch is drawn with, and its
// uniforms.
type ShaderManager struct {
	program    uint32 // program ID
	uTransform int32  // window pixels -> NDC
	uTextured  int32  // 0 for vertex colors, 1 to modulate by uTexture
	uTexture   int32  // sampler, always texture unit 0
}

// Vertex shader. Applies the uniform transformation matrix and forwards color
// and texture coordinates.
const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;
layout (location = 2) in vec2 aUV;

uniform mat4 uTransform;

out vec4 vColor;
out vec2 vUV;

void main() {
    gl_Position = uTransform * vec4(aPos, 0.0, 1.0);
    vColor = aColor;
    vUV = aUV;
}
` + "\x00"

// Fragment shader. Textured batches tint the texel by the vertex color.
const fragmentShaderSource = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
out vec4 FragColor;

uniform sampler2D uTexture;
uniform int uTextured;

void main() {
    if (uTextured == 1) {
        FragColor = texture(uTexture, vUV) * vColor;
    } else {
        FragColor = vColor;
    }
}
` + "\x00"

// NewShaderManager compiles and links the program and leaves it bound.
func NewShaderManager() (*ShaderManager, error) {
	sm := &ShaderManager{}

	vertexShader, err := sm.compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := sm.compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	sm.program = gl.CreateProgram()
	gl.AttachShader(sm.program, vertexShader)
	gl.AttachShader(sm.program, fragmentShader)
	gl.LinkProgram(sm.program)

	var status int32
	gl.GetProgramiv(sm.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(sm.program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(sm.program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(sm.program)
		return nil, fmt.Errorf("shader linking failed: %s", strings.TrimRight(logText, "\x00"))
	}

	sm.uTransform = gl.GetUniformLocation(sm.program, gl.Str("uTransform\x00"))
	sm.uTextured = gl.GetUniformLocation(sm.program, gl.Str("uTextured\x00"))
	sm.uTexture = gl.GetUniformLocation(sm.program, gl.Str("uTexture\x00"))
	gl.UseProgram(sm.program)
	gl.Uniform1i(sm.uTexture, 0)
	return sm, nil
}

// SetTransform sets the uniform transformation matrix.
func (sm *ShaderManager) SetTransform(matrix [16]float32) {
	gl.UniformMatrix4fv(sm.uTransform, 1, false, &matrix[0])
}

// SetTextured toggles texture sampling for subsequent draws.
func (sm *ShaderManager) SetTextured(on bool) {
	var v int32
	if on {
		v = 1
	}
	gl.Uniform1i(sm.uTextured, v)
}

// Delete releases the program.
func (sm *ShaderManager) Delete() {
	gl.DeleteProgram(sm.program)
}

func (sm *ShaderManager) compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader compilation failed: %s", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}
