// Command shadercheck compiles and links shader files against the local
// OpenGL driver in a hidden window and reports every diagnostic.
//
// Usage:
//
//	go run ./cmd/shadercheck -vs Shader.vs -fs Shader.fs [-gs Shader.gs]
//
// It exits 1 if any stage fails to load, compile or link.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/glshader"
	"github.com/go-theft-auto/glshader/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		vs      = flag.String("vs", "", "vertex shader file")
		fs      = flag.String("fs", "", "fragment shader file")
		gs      = flag.String("gs", "", "geometry shader file (optional)")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	if *vs == "" || *fs == "" {
		fmt.Fprintln(os.Stderr, "shadercheck: -vs and -fs are required")
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, log, *vs, *fs, *gs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, log *slog.Logger, vs, fs, gs string) error {
	win, err := opengl.NewWindow(opengl.WindowConfig{Width: 64, Height: 64, Title: "shadercheck", Hidden: true})
	if err != nil {
		return err
	}
	defer win.Destroy()

	dev := opengl.NewDevice()
	prog, err := glshader.New(dev, glshader.FileSource{},
		glshader.Sources{Vertex: vs, Fragment: fs, Geometry: gs},
		glshader.WithLogger(log))
	if err != nil {
		report(w, err)
		return errors.New("shadercheck: program did not build")
	}
	defer prog.Delete()

	fmt.Fprintf(w, "ok: program %d linked\n", prog.ID())
	for _, u := range dev.ActiveUniforms(prog.ID()) {
		fmt.Fprintf(w, "  uniform %-24s location=%d type=0x%04x size=%d\n", u.Name, u.Location, u.Type, u.Size)
	}
	return dev.Err()
}

// report prints one block per failure in the error taxonomy.
func report(w io.Writer, err error) {
	for _, le := range glshader.SourceLoadErrors(err) {
		fmt.Fprintf(w, "%s: cannot read %s: %v\n", le.Stage, le.ID, le.Err)
	}
	for _, ce := range glshader.CompileErrors(err) {
		fmt.Fprintf(w, "%s: compile error\n%s\n", ce.Stage, ce.Log)
	}
	var le *glshader.LinkError
	if errors.As(err, &le) {
		fmt.Fprintf(w, "PROGRAM: link error\n%s\n", le.Log)
	}
}
