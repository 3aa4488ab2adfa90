package glshader

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrSourceLoad = errors.New("shader source load failed")
	ErrCompile    = errors.New("shader stage compilation failed")
	ErrLink       = errors.New("shader program linking failed")

	// ErrReleased is returned when using a program after Delete.
	ErrReleased = errors.New("shader program released")
)

// SourceLoadError reports a stage whose source could not be resolved to text.
type SourceLoadError struct {
	Stage Stage
	ID    string
	Err   error
}

func (e *SourceLoadError) Error() string {
	return fmt.Sprintf("load %s shader %q: %v", e.Stage, e.ID, e.Err)
}

func (e *SourceLoadError) Unwrap() error { return e.Err }

func (e *SourceLoadError) Is(target error) bool { return target == ErrSourceLoad }

// CompileError reports a stage rejected by the device compiler.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, trimLog(e.Log))
}

func (e *CompileError) Is(target error) bool { return target == ErrCompile }

// LinkError reports a stage set the device refused to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader program linking failed: " + trimLog(e.Log)
}

func (e *LinkError) Is(target error) bool { return target == ErrLink }

// CompileErrors returns every CompileError contained in err, which may be
// a single error or the result of errors.Join.
func CompileErrors(err error) []*CompileError {
	var out []*CompileError
	walk(err, func(e error) {
		if ce, ok := e.(*CompileError); ok {
			out = append(out, ce)
		}
	})
	return out
}

// SourceLoadErrors returns every SourceLoadError contained in err.
func SourceLoadErrors(err error) []*SourceLoadError {
	var out []*SourceLoadError
	walk(err, func(e error) {
		if le, ok := e.(*SourceLoadError); ok {
			out = append(out, le)
		}
	})
	return out
}

func walk(err error, fn func(error)) {
	if err == nil {
		return
	}
	fn(err)
	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			walk(e, fn)
		}
	case interface{ Unwrap() error }:
		walk(x.Unwrap(), fn)
	}
}

// trimLog strips the trailing NUL and newlines drivers leave in info logs.
func trimLog(s string) string {
	s = strings.TrimRight(s, "\x00\r\n ")
	if s == "" {
		return "(no info log)"
	}
	return s
}
