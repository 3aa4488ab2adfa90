// Package config loads the TOML settings shared by the demo programs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Window holds the window and context settings.
// Field order and types match opengl.WindowConfig so the two convert directly.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	Hidden bool   `toml:"hidden"`
	VSync  bool   `toml:"vsync"`
}

// Demo is the full configuration of a demo program.
type Demo struct {
	Window Window `toml:"window"`
	// Assets is the directory textures are read from.
	Assets string `toml:"assets"`
}

// Default returns the settings the tutorials were written against.
func Default() Demo {
	return Demo{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "LearnOpenGL",
			VSync:  true,
		},
		Assets: "resources",
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults unchanged. Unknown keys are rejected.
func Load(path string) (Demo, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg and validates the result.
func Decode(data []byte, cfg *Demo) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate reports settings no window can be created with.
func (d Demo) Validate() error {
	if d.Window.Width <= 0 || d.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", d.Window.Width, d.Window.Height)
	}
	return nil
}
