package glshader_test

import (
	"regexp"
	"strings"

	"github.com/go-theft-auto/glshader"
)

// fakeDevice is an in-memory Device. A stage fails to compile when its
// source contains "#error"; a link fails when any stage contains
// "// link-fail". Uniforms are discovered from "uniform <type> <name>;"
// declarations and writes go to the current program, as on a real driver.
type fakeDevice struct {
	nextID  uint32
	stages  map[uint32]fakeStage
	progs   map[uint32]*fakeProgram
	current uint32

	compiled []glshader.Stage
	writes   int
	uses     int
}

type fakeStage struct {
	kind   glshader.Stage
	source string
}

type fakeProgram struct {
	names  map[string]int32
	values map[int32][]float32
}

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		stages: make(map[uint32]fakeStage),
		progs:  make(map[uint32]*fakeProgram),
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) CompileStage(stage glshader.Stage, source string) (uint32, string, bool) {
	id := d.id()
	d.stages[id] = fakeStage{kind: stage, source: source}
	d.compiled = append(d.compiled, stage)
	if strings.Contains(source, "#error") {
		return id, "0:1(1): error: syntax error\n\x00", false
	}
	return id, "", true
}

func (d *fakeDevice) LinkProgram(stages []uint32) (uint32, string, bool) {
	id := d.id()
	p := &fakeProgram{names: make(map[string]int32), values: make(map[int32][]float32)}
	d.progs[id] = p
	for _, sid := range stages {
		src := d.stages[sid].source
		if strings.Contains(src, "// link-fail") {
			return id, "error: linking failed", false
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, ok := p.names[m[1]]; !ok {
				p.names[m[1]] = int32(len(p.names))
			}
		}
	}
	return id, "", true
}

func (d *fakeDevice) DeleteStage(id uint32)   { delete(d.stages, id) }
func (d *fakeDevice) DeleteProgram(id uint32) { delete(d.progs, id) }

func (d *fakeDevice) UseProgram(id uint32) {
	d.uses++
	d.current = id
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	p, ok := d.progs[program]
	if !ok {
		return glshader.InvalidLocation
	}
	loc, ok := p.names[name]
	if !ok {
		return glshader.InvalidLocation
	}
	return loc
}

func (d *fakeDevice) write(loc int32, v ...float32) {
	d.writes++
	p, ok := d.progs[d.current]
	if !ok || loc < 0 {
		return
	}
	p.values[loc] = append([]float32(nil), v...)
}

func (d *fakeDevice) Uniform1i(loc int32, v int32)               { d.write(loc, float32(v)) }
func (d *fakeDevice) Uniform1f(loc int32, v float32)             { d.write(loc, v) }
func (d *fakeDevice) Uniform2f(loc int32, x, y float32)          { d.write(loc, x, y) }
func (d *fakeDevice) Uniform3f(loc int32, x, y, z float32)       { d.write(loc, x, y, z) }
func (d *fakeDevice) Uniform4f(loc int32, x, y, z, w float32)    { d.write(loc, x, y, z, w) }
func (d *fakeDevice) UniformMatrix2fv(loc int32, m *[4]float32)  { d.write(loc, m[:]...) }
func (d *fakeDevice) UniformMatrix3fv(loc int32, m *[9]float32)  { d.write(loc, m[:]...) }
func (d *fakeDevice) UniformMatrix4fv(loc int32, m *[16]float32) { d.write(loc, m[:]...) }

// value returns what was written to name in program, if anything.
func (d *fakeDevice) value(program uint32, name string) ([]float32, bool) {
	p, ok := d.progs[program]
	if !ok {
		return nil, false
	}
	loc, ok := p.names[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

const (
	vertexSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
uniform mat4 model;
uniform mat4 projection;
void main() {
    gl_Position = projection * model * vec4(aPos, 1.0);
}
`
	fragmentSrc = `#version 410 core
out vec4 FragColor;
uniform sampler2D texture1;
uniform vec4 tint;
uniform vec2 offset;
uniform vec3 color;
uniform mat2 warp;
uniform mat3 uvTransform;
void main() {
    FragColor = tint;
}
`
	geometrySrc = `#version 410 core
layout (triangles) in;
layout (triangle_strip, max_vertices = 3) out;
uniform float scale;
void main() {
    for (int i = 0; i < 3; i++) {
        gl_Position = gl_in[i].gl_Position * scale;
        EmitVertex();
    }
    EndPrimitive();
}
`
)
