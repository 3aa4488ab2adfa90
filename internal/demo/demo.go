// Package demo holds the start-up and frame loop shared by the example
// programs.
package demo

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glshader/backend/opengl"
	"github.com/go-theft-auto/glshader/internal/config"
	"github.com/go-theft-auto/glshader/internal/imgload"
)

// App is an open window with its device and settings.
type App struct {
	Window *opengl.Window
	Device *opengl.Device
	Config config.Demo
	Log    *slog.Logger
}

// Flags are the command-line settings common to all demos.
type Flags struct {
	Config  string
	Verbose bool
}

// ParseFlags parses os.Args with the common demo flags.
func ParseFlags() Flags {
	var f Flags
	flag.StringVar(&f.Config, "config", "learngl.toml", "TOML settings file")
	flag.BoolVar(&f.Verbose, "v", false, "log debug messages")
	flag.Parse()
	return f
}

// Open loads the settings, lets adjust override them, and opens the window.
// The caller must have locked the OS thread.
func Open(f Flags, adjust func(*config.Demo)) (*App, error) {
	level := slog.LevelInfo
	if f.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}
	if adjust != nil {
		adjust(&cfg)
	}

	win, err := opengl.NewWindow(opengl.WindowConfig(cfg.Window))
	if err != nil {
		return nil, err
	}
	log.Debug("context ready",
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))

	return &App{
		Window: win,
		Device: opengl.NewDevice(),
		Config: cfg,
		Log:    log,
	}, nil
}

// Loop clears the framebuffer with the tutorials' teal, runs frame and
// presents, until the window is closed or frame fails. frame receives
// seconds since start.
func (a *App) Loop(depth bool, frame func(t float32) error) error {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		gl.Enable(gl.DEPTH_TEST)
		mask |= gl.DEPTH_BUFFER_BIT
	}
	for !a.Window.ShouldClose() {
		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(mask)

		if err := frame(float32(a.Window.Time())); err != nil {
			return err
		}

		if err := a.Device.Err(); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		a.Window.EndFrame()
	}
	return nil
}

// Close destroys the window.
func (a *App) Close() {
	a.Window.Destroy()
}

// Main runs fn and exits non-zero if it fails.
func Main(fn func() error) {
	if err := fn(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Texture loads name from the assets directory and uploads it.
func (a *App) Texture(name string, flipY bool) (*opengl.Texture, error) {
	img, err := imgload.Load(os.DirFS(a.Config.Assets), name, flipY)
	if err != nil {
		return nil, err
	}
	a.Log.Debug("texture loaded", "name", name, "size", img.Bounds().Size())
	return opengl.NewTexture(img), nil
}
