package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig describes the window and context to create.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	Hidden bool
	VSync  bool
}

// Window owns a GLFW window with a current OpenGL 4.1 core context.
// GLFW must run on the main thread; callers lock it with runtime.LockOSThread
// in an init function.
type Window struct {
	win *glfw.Window

	wireframe bool
	toggles   map[glfw.Key]func()
}

// NewWindow initializes GLFW, opens the window, makes its context current
// and loads the GL function pointers.
func NewWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	w := &Window{win: win, toggles: make(map[glfw.Key]func())}

	// The framebuffer can differ from the window size on HiDPI displays.
	fbw, fbh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	win.SetKeyCallback(w.keyCallback)

	return w, nil
}

// OnKey registers fn to run when key is pressed.
func (w *Window) OnKey(key glfw.Key, fn func()) {
	w.toggles[key] = fn
}

// EnableWireframeToggle makes W switch between filled and line polygons.
func (w *Window) EnableWireframeToggle() {
	w.OnKey(glfw.KeyW, func() {
		w.wireframe = !w.wireframe
		if w.wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	})
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// EndFrame presents the back buffer and processes pending events.
func (w *Window) EndFrame() {
	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Time returns seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Aspect returns the framebuffer width divided by its height.
func (w *Window) Aspect() float32 {
	fbw, fbh := w.win.GetFramebufferSize()
	if fbh == 0 {
		return 1
	}
	return float32(fbw) / float32(fbh)
}

// GLFW returns the underlying window.
func (w *Window) GLFW() *glfw.Window {
	return w.win
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		win.SetShouldClose(true)
		return
	}
	if fn, ok := w.toggles[key]; ok {
		fn()
	}
}
