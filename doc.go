/*
Package glshader wraps the build and use of an OpenGL shader program.

A Program is compiled from two or three stage sources (vertex, fragment and
an optional geometry stage), linked, and then exposes typed uniform setters.
The package talks to the driver only through the Device interface; the
backend/opengl package provides the go-gl implementation.

# Quick Start

	dev := opengl.NewDevice()
	prog, err := glshader.NewFromFiles(dev, "shaders", "Shader.vs", "Shader.fs", "")
	if err != nil {
	    return err
	}
	defer prog.Delete()

	prog.Use()
	prog.SetInt("texture1", 0)
	prog.SetMat4("model", mgl32.Ident4())

# Errors

New never returns a half-built program. Unreadable sources, stages rejected
by the compiler and link failures are reported as *SourceLoadError,
*CompileError and *LinkError. Several failures of the same phase are joined
with errors.Join; CompileErrors and SourceLoadErrors list them.

	_, err := glshader.New(dev, src, ids)
	for _, ce := range glshader.CompileErrors(err) {
	    fmt.Println(ce.Stage, ce.Log)
	}

# Uniforms

Writes go to the program current on the device, so call Use before setting
uniforms, or build the program WithAutoActivate. Names that are not active
uniforms of the program are skipped silently, matching the driver's handling
of location -1. Matrices are uploaded column-major and never transposed.

All calls must be made from the thread that owns the GL context.
*/
package glshader
