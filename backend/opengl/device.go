// Package opengl provides the OpenGL 4.1 core implementation of
// glshader.Device, plus the window, mesh and texture helpers the demos use.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glshader"
)

// Device implements glshader.Device on the current OpenGL context.
// gl.Init must have been called on the owning thread.
type Device struct{}

var _ glshader.Device = (*Device)(nil)

// NewDevice returns a device bound to the current context.
func NewDevice() *Device {
	return &Device{}
}

var stageTypes = map[glshader.Stage]uint32{
	glshader.StageVertex:   gl.VERTEX_SHADER,
	glshader.StageFragment: gl.FRAGMENT_SHADER,
	glshader.StageGeometry: gl.GEOMETRY_SHADER,
}

// CompileStage implements glshader.Device.
func (d *Device) CompileStage(stage glshader.Stage, source string) (uint32, string, bool) {
	xtype, ok := stageTypes[stage]
	if !ok {
		return 0, fmt.Sprintf("unknown stage %s", stage), false
	}

	shader := gl.CreateShader(xtype)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return shader, shaderInfoLog(shader), false
	}
	return shader, "", true
}

// LinkProgram implements glshader.Device.
func (d *Device) LinkProgram(stages []uint32) (uint32, string, bool) {
	program := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return program, programInfoLog(program), false
	}

	// Stages stay alive only while attached; detach so DeleteStage frees them.
	for _, s := range stages {
		gl.DetachShader(program, s)
	}
	return program, "", true
}

// DeleteStage implements glshader.Device.
func (d *Device) DeleteStage(id uint32) {
	if id != 0 {
		gl.DeleteShader(id)
	}
}

// DeleteProgram implements glshader.Device.
func (d *Device) DeleteProgram(id uint32) {
	if id != 0 {
		gl.DeleteProgram(id)
	}
}

// UseProgram implements glshader.Device.
func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// UniformLocation implements glshader.Device.
func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(loc int32, v int32)            { gl.Uniform1i(loc, v) }
func (d *Device) Uniform1f(loc int32, v float32)          { gl.Uniform1f(loc, v) }
func (d *Device) Uniform2f(loc int32, x, y float32)       { gl.Uniform2f(loc, x, y) }
func (d *Device) Uniform3f(loc int32, x, y, z float32)    { gl.Uniform3f(loc, x, y, z) }
func (d *Device) Uniform4f(loc int32, x, y, z, w float32) { gl.Uniform4f(loc, x, y, z, w) }

func (d *Device) UniformMatrix2fv(loc int32, m *[4]float32) {
	gl.UniformMatrix2fv(loc, 1, false, &m[0])
}

func (d *Device) UniformMatrix3fv(loc int32, m *[9]float32) {
	gl.UniformMatrix3fv(loc, 1, false, &m[0])
}

func (d *Device) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// UniformInt reads back an int or sampler uniform.
func (d *Device) UniformInt(program uint32, loc int32) int32 {
	var v int32
	gl.GetUniformiv(program, loc, &v)
	return v
}

// UniformFloats reads back n floats of a float, vector or matrix uniform.
// It returns nil when n is not positive.
func (d *Device) UniformFloats(program uint32, loc int32, n int) []float32 {
	if n <= 0 {
		return nil
	}
	v := make([]float32, n)
	gl.GetUniformfv(program, loc, &v[0])
	return v
}

// Uniform describes one active uniform of a linked program.
type Uniform struct {
	Name     string
	Location int32
	Type     uint32
	Size     int32
}

// ActiveUniforms lists the uniforms the linker kept.
func (d *Device) ActiveUniforms(program uint32) []Uniform {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if count == 0 || maxLen == 0 {
		return nil
	}

	out := make([]Uniform, 0, count)
	buf := make([]uint8, maxLen)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(program, i, maxLen, &length, &size, &xtype, &buf[0])
		name := string(buf[:length])
		out = append(out, Uniform{
			Name:     name,
			Location: d.UniformLocation(program, name),
			Type:     xtype,
			Size:     size,
		})
	}
	return out
}

// GLError is an error code reported by glGetError.
type GLError struct {
	Code uint32
}

func (e GLError) Error() string {
	switch e.Code {
	case gl.INVALID_ENUM:
		return "gl: invalid enum"
	case gl.INVALID_VALUE:
		return "gl: invalid value"
	case gl.INVALID_OPERATION:
		return "gl: invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "gl: invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "gl: out of memory"
	default:
		return fmt.Sprintf("gl: error 0x%04x", e.Code)
	}
}

// Err drains the GL error queue and returns the first error, if any.
func (d *Device) Err() error {
	var first error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == nil {
			first = GLError{Code: code}
		}
	}
	return first
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}
