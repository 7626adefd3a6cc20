// Package renderer provides OpenGL rendering for the input demo scene.
package renderer

import (
	"fmt"
	"strings"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/tickinput/internal/logger"
	gomath "github.com/Faultbox/tickinput/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer draws axis-aligned quads in normalized surface coordinates,
// the same top-left-origin [0,1] space the input layer reports.
type Renderer struct {
	config Config

	// Shader program for quad rendering
	shaderProgram uint32

	// Uniform locations
	centerLoc int32
	sizeLoc   int32
	colorLoc  int32

	// Unit quad VAO/VBO
	quadVAO uint32
	quadVBO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state. The demo scene is flat 2D, so no
	// depth test; quads blend over the background instead.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	// Create shader program
	var err error
	r.shaderProgram, err = r.createShaderProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	// Create unit quad geometry
	if err := r.createQuad(); err != nil {
		return nil, fmt.Errorf("failed to create quad: %w", err)
	}

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.shaderProgram != 0 {
		gl.DeleteProgram(r.shaderProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetClearColor sets the background color for subsequent frames.
func (r *Renderer) SetClearColor(red, green, blue float32) {
	gl.ClearColor(red, green, blue, 1.0)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Nothing to do for now - batched draws would be flushed here
}

// DrawQuad draws a quad centered at the given normalized surface
// position. Size is the full extent, also in normalized units.
func (r *Renderer) DrawQuad(center, size gomath.Vec2, red, green, blue, alpha float32) {
	gl.UseProgram(r.shaderProgram)
	gl.Uniform2f(r.centerLoc, center.X, center.Y)
	gl.Uniform2f(r.sizeLoc, size.X, size.Y)
	gl.Uniform4f(r.colorLoc, red, green, blue, alpha)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// createShaderProgram creates the quad shader program.
func (r *Renderer) createShaderProgram() (uint32, error) {
	// Vertex shader - places the unit quad in surface space, then maps
	// surface space (top-left origin, y down) to clip space (y up)
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec2 aPos;

		uniform vec2 uCenter;
		uniform vec2 uSize;

		void main() {
			vec2 p = uCenter + aPos * uSize;
			gl_Position = vec4(p.x * 2.0 - 1.0, 1.0 - p.y * 2.0, 0.0, 1.0);
		}
	` + "\x00"

	// Fragment shader - flat fill
	fragmentShaderSource := `
		#version 410 core

		uniform vec4 uColor;
		out vec4 FragColor;

		void main() {
			FragColor = uColor;
		}
	` + "\x00"

	// Compile vertex shader
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	// Compile fragment shader
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Check link status
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %s", log)
	}

	r.centerLoc = gl.GetUniformLocation(program, gl.Str("uCenter\x00"))
	r.sizeLoc = gl.GetUniformLocation(program, gl.Str("uSize\x00"))
	r.colorLoc = gl.GetUniformLocation(program, gl.Str("uColor\x00"))

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	// Check compile status
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}

// createQuad creates the shared unit quad geometry.
func (r *Renderer) createQuad() error {
	// Unit quad centered at the origin, scaled per draw by uSize
	vertices := []float32{
		-0.5, -0.5,
		0.5, -0.5,
		-0.5, 0.5,
		0.5, 0.5,
	}

	// Create VAO (Vertex Array Object)
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	// Create VBO (Vertex Buffer Object)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)

	// Unbind
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("quad created",
		zap.Uint32("vao", r.quadVAO),
		zap.Uint32("vbo", r.quadVBO),
	)
	return nil
}
