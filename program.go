package glshader

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the lifecycle state of a Program.
type State int

const (
	// StateReady means the program is linked and may be used.
	StateReady State = iota + 1
	// StateReleased means Delete has been called.
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateReleased:
		return "released"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sources names the stage sources of a program. Vertex and Fragment are
// required; an empty Geometry means no geometry stage.
type Sources struct {
	Vertex   string
	Fragment string
	Geometry string
}

func (s Sources) stages() []stageSource {
	out := []stageSource{
		{StageVertex, s.Vertex},
		{StageFragment, s.Fragment},
	}
	if s.Geometry != "" {
		out = append(out, stageSource{StageGeometry, s.Geometry})
	}
	return out
}

type stageSource struct {
	stage Stage
	id    string
}

// noCopy makes go vet's copylocks check flag copies of a Program.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Program is a linked shader program owned by a single holder.
//
// Programs must not be copied; pass *Program to transfer ownership.
type Program struct {
	noCopy noCopy

	dev   Device
	id    uint32
	state State
	opts  options
}

// New loads, compiles and links the stages named by ids.
//
// Every failure is collected: all unreadable sources, or all stages that
// fail to compile, are reported together through errors.Join. A program is
// returned only when linking succeeded; on error nothing is left allocated
// on the device.
func New(dev Device, src Source, ids Sources, opts ...Option) (*Program, error) {
	if dev == nil {
		return nil, errors.New("glshader: nil device")
	}
	if src == nil {
		return nil, errors.New("glshader: nil source")
	}
	if ids.Vertex == "" || ids.Fragment == "" {
		return nil, errors.New("glshader: vertex and fragment sources are required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	stages := ids.stages()

	// Load
	texts := make([]string, len(stages))
	var errs []error
	for i, s := range stages {
		text, err := src.Load(s.id)
		if err != nil {
			log.Error("shader source not read", "stage", s.stage, "id", s.id, "err", err)
			errs = append(errs, &SourceLoadError{Stage: s.stage, ID: s.id, Err: err})
			continue
		}
		texts[i] = text
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// Compile
	compiled := make([]uint32, 0, len(stages))
	release := func() {
		for _, id := range compiled {
			dev.DeleteStage(id)
		}
	}
	for i, s := range stages {
		id, infoLog, ok := dev.CompileStage(s.stage, texts[i])
		if id != 0 {
			compiled = append(compiled, id)
		}
		if !ok {
			log.Error("shader compilation failed", "stage", s.stage, "id", s.id, "log", trimLog(infoLog))
			errs = append(errs, &CompileError{Stage: s.stage, Log: infoLog})
		}
	}
	if len(errs) > 0 {
		release()
		return nil, errors.Join(errs...)
	}

	// Link
	pid, infoLog, ok := dev.LinkProgram(compiled)
	release()
	if !ok {
		if pid != 0 {
			dev.DeleteProgram(pid)
		}
		log.Error("shader program linking failed", "vertex", ids.Vertex, "fragment", ids.Fragment, "log", trimLog(infoLog))
		return nil, &LinkError{Log: infoLog}
	}

	log.Debug("shader program linked", "program", pid, "vertex", ids.Vertex, "fragment", ids.Fragment, "geometry", ids.Geometry)
	return &Program{dev: dev, id: pid, state: StateReady, opts: o}, nil
}

// NewFromFiles builds a program from files under dir. geometry may be empty.
// File names are resolved as DirSource identifiers, so they must be
// slash-separated paths inside dir without "." or ".." elements.
func NewFromFiles(dev Device, dir, vertex, fragment, geometry string, opts ...Option) (*Program, error) {
	return New(dev, DirSource(dir), Sources{Vertex: vertex, Fragment: fragment, Geometry: geometry}, opts...)
}

// NewFromStrings builds a program from inline source text. geometry may be empty.
func NewFromStrings(dev Device, vertex, fragment, geometry string, opts ...Option) (*Program, error) {
	src := StringSource{"vertex": vertex, "fragment": fragment}
	ids := Sources{Vertex: "vertex", Fragment: "fragment"}
	if geometry != "" {
		src["geometry"] = geometry
		ids.Geometry = "geometry"
	}
	return New(dev, src, ids, opts...)
}

// ID returns the device handle, or 0 once released.
func (p *Program) ID() uint32 { return p.id }

// State returns the lifecycle state.
func (p *Program) State() State { return p.state }

// Use makes the program current on the device.
func (p *Program) Use() error {
	if p.state != StateReady {
		return ErrReleased
	}
	p.dev.UseProgram(p.id)
	return nil
}

// Delete releases the program handle. Calling it more than once is harmless.
func (p *Program) Delete() {
	if p.state != StateReady {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.opts.logger.Debug("shader program released", "program", p.id)
	p.id = 0
	p.state = StateReleased
}

// Location returns the location of the named uniform, or InvalidLocation if
// the program has no such active uniform or has been released.
func (p *Program) Location(name string) int32 {
	if p.state != StateReady {
		return InvalidLocation
	}
	return p.dev.UniformLocation(p.id, name)
}

// location resolves name for a write. ok is false when the write must be
// skipped.
func (p *Program) location(name string) (int32, bool) {
	loc := p.Location(name)
	if loc < 0 {
		return loc, false
	}
	if p.opts.autoActivate {
		p.dev.UseProgram(p.id)
	}
	return loc, true
}

// SetBool sets a bool uniform as 0 or 1.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc, ok := p.location(name); ok {
		p.dev.Uniform1i(loc, v)
	}
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if loc, ok := p.location(name); ok {
		p.dev.Uniform1f(loc, v)
	}
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	p.SetVec2f(name, v[0], v[1])
}

// SetVec2f sets a vec2 uniform from components.
func (p *Program) SetVec2f(name string, x, y float32) {
	if loc, ok := p.location(name); ok {
		p.dev.Uniform2f(loc, x, y)
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	p.SetVec3f(name, v[0], v[1], v[2])
}

// SetVec3f sets a vec3 uniform from components.
func (p *Program) SetVec3f(name string, x, y, z float32) {
	if loc, ok := p.location(name); ok {
		p.dev.Uniform3f(loc, x, y, z)
	}
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	p.SetVec4f(name, v[0], v[1], v[2], v[3])
}

// SetVec4f sets a vec4 uniform from components.
func (p *Program) SetVec4f(name string, x, y, z, w float32) {
	if loc, ok := p.location(name); ok {
		p.dev.Uniform4f(loc, x, y, z, w)
	}
}

// SetMat2 sets a mat2 uniform.
func (p *Program) SetMat2(name string, m mgl32.Mat2) {
	if loc, ok := p.location(name); ok {
		a := [4]float32(m)
		p.dev.UniformMatrix2fv(loc, &a)
	}
}

// SetMat3 sets a mat3 uniform.
func (p *Program) SetMat3(name string, m mgl32.Mat3) {
	if loc, ok := p.location(name); ok {
		a := [9]float32(m)
		p.dev.UniformMatrix3fv(loc, &a)
	}
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc, ok := p.location(name); ok {
		a := [16]float32(m)
		p.dev.UniformMatrix4fv(loc, &a)
	}
}
