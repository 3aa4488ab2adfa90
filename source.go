package glshader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Source resolves a shader identifier to its source text.
type Source interface {
	Load(id string) (string, error)
}

// FSSource loads shader text from a file system, typically os.DirFS or an
// embed.FS. Identifiers are slash-separated paths within the file system.
type FSSource struct {
	FS fs.FS
}

// DirSource returns an FSSource rooted at dir on the host file system.
// Identifiers must be valid fs.FS paths: unrooted, slash-separated, with no
// "." or ".." elements. Use FileSource for paths given on a command line.
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

// FileSource loads shader text from host paths as given, relative to the
// working directory or absolute.
type FileSource struct{}

// Load implements Source.
func (FileSource) Load(id string) (string, error) {
	b, err := os.ReadFile(filepath.Clean(id))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Load implements Source.
func (s FSSource) Load(id string) (string, error) {
	if s.FS == nil {
		return "", fmt.Errorf("no file system")
	}
	b, err := fs.ReadFile(s.FS, id)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// StringSource is an in-memory Source keyed by identifier.
type StringSource map[string]string

// Load implements Source.
func (s StringSource) Load(id string) (string, error) {
	text, ok := s[id]
	if !ok {
		return "", fmt.Errorf("%q: %w", id, fs.ErrNotExist)
	}
	return text, nil
}
