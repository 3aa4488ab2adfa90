package glshader

// InvalidLocation is returned by Device.UniformLocation for names that are
// not active uniforms of the program.
const InvalidLocation int32 = -1

// Device is the graphics context a Program talks to.
// The context must be current on the calling thread before any call.
//
// Matrices are passed column-major; implementations must upload them
// without transposing.
type Device interface {
	// CompileStage creates a stage object and compiles source into it.
	// The returned id must be released with DeleteStage even when ok is false.
	CompileStage(stage Stage, source string) (id uint32, infoLog string, ok bool)

	// LinkProgram creates a program, attaches stages and links it.
	// The returned id must be released with DeleteProgram even when ok is false.
	LinkProgram(stages []uint32) (id uint32, infoLog string, ok bool)

	DeleteStage(id uint32)
	DeleteProgram(id uint32)

	// UseProgram makes program current for subsequent draw calls.
	UseProgram(program uint32)

	UniformLocation(program uint32, name string) int32

	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform4f(loc int32, x, y, z, w float32)
	UniformMatrix2fv(loc int32, m *[4]float32)
	UniformMatrix3fv(loc int32, m *[9]float32)
	UniformMatrix4fv(loc int32, m *[16]float32)
}
