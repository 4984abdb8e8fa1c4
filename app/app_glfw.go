package app

import (
	"image"
	"time"

	"github.com/db47h/fbview"
	"github.com/db47h/fbview/glutil"
	"github.com/db47h/fbview/loop"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// KeyHandler is implemented by Handlers that want key events. Escape always
// closes the window, whether or not the Handler implements KeyHandler.
//
type KeyHandler interface {
	OnKey(w *Window, key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
}

// DriverVersion returns the GLFW and OpenGL versions. It must be called from
// Handler.Init or later.
//
func DriverVersion() string {
	return "GLFW " + glfw.GetVersionString() + " - OpenGL " + glutil.Version()
}

// Run creates a window, then calls h until the window is closed.
//
func Run(h Handler, opts ...WindowOption) (err error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.set(&cfg)
	}
	if cfg.logical.X <= 0 || cfg.logical.Y <= 0 {
		return errors.Errorf("invalid logical size %v", cfg.logical)
	}

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "init GLFW")
	}
	defer glfw.Terminate()

	w, err := newWindow(&cfg)
	if err != nil {
		return err
	}
	defer w.glfw.Destroy()
	if kh, ok := h.(KeyHandler); ok {
		w.onKey = kh
	}
	if fh, ok := h.(FrameBufferSizeHandler); ok {
		w.onFrameBufferSize = fh
	}

	if err := h.Init(w); err != nil {
		return errors.Wrap(err, "init")
	}
	defer func() {
		if terr := h.Terminate(); terr != nil && err == nil {
			err = errors.Wrap(terr, "terminate")
		}
	}()

	var l loop.Simple
	l.MinFrameTime(cfg.minFT)
	start := time.Now()
	frames := l.Run(&runner{Window: w, h: h})
	fbview.Logger().Info("window closed", "frames", frames, "elapsed", time.Since(start))
	return nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func dontCare(v int) int {
	if v <= 0 {
		return glfw.DontCare
	}
	return v
}

func newWindow(cfg *winCfg) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.resizable))
	glfw.WindowHint(glfw.Visible, boolHint(!cfg.hidden))

	win, err := glfw.CreateWindow(cfg.w, cfg.h, cfg.title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}
	if cfg.minW > 0 || cfg.minH > 0 {
		win.SetSizeLimits(dontCare(cfg.minW), dontCare(cfg.minH), glfw.DontCare, glfw.DontCare)
	}

	win.MakeContextCurrent()
	if err := glutil.Init(); err != nil {
		win.Destroy()
		return nil, err
	}
	glfw.SwapInterval(cfg.swapInterval)
	fbview.Logger().Info("window created", "title", cfg.title, "driver", DriverVersion())

	// the framebuffer size callback does not fire for the initial size.
	w := newScreenWindow(cfg.logical, image.Pt(win.GetFramebufferSize()), glutil.Viewport)
	w.glfw = win
	win.SetFramebufferSizeCallback(w.glfwFrameBufferSizeCallback)
	win.SetKeyCallback(w.glfwKeyCallback)
	glutil.ClearColor(cfg.clearColor)

	return w, nil
}

// A Window is a GLFW window showing a letterboxed logical framebuffer.
//
type Window struct {
	glfw              *glfw.Window
	screen            *fbview.Screen
	setViewport       func(x, y, width, height int32)
	onKey             KeyHandler
	onFrameBufferSize FrameBufferSizeHandler
}

// newScreenWindow returns a Window with a new Screen and applies its initial
// viewport with setViewport.
//
func newScreenWindow(logical, physical image.Point, setViewport func(x, y, width, height int32)) *Window {
	w := &Window{
		screen:      fbview.NewScreen(logical, physical),
		setViewport: setViewport,
	}
	w.applyViewport()
	return w
}

// NativeHandle returns the underlying GLFW window.
//
func (w *Window) NativeHandle() *glfw.Window {
	return w.glfw
}

// Screen returns the window's screen. Its viewport is kept up to date with the
// window framebuffer size.
//
func (w *Window) Screen() *fbview.Screen {
	return w.screen
}

// Close requests the window to close at the end of the current frame.
//
func (w *Window) Close() {
	w.glfw.SetShouldClose(true)
}

// ProcessEvents swaps buffers, then polls events. It reports whether the
// window should close.
//
func (w *Window) ProcessEvents() (quit bool) {
	w.glfw.SwapBuffers()
	glfw.PollEvents()
	return w.glfw.ShouldClose()
}

// Cursor returns the cursor position in logical framebuffer coordinates. The
// returned boolean is false if the cursor is outside of the viewport.
//
func (w *Window) Cursor() (image.Point, bool) {
	x, y := w.glfw.GetCursorPos()
	// cursor coordinates are in screen units, which may differ from
	// framebuffer pixels on high DPI displays.
	ww, wh := w.glfw.GetSize()
	if ww <= 0 || wh <= 0 {
		return image.Point{}, false
	}
	fb := w.screen.Size()
	p := fbview.Pt(float32(x*float64(fb.X)/float64(ww)), float32(y*float64(fb.Y)/float64(wh)))
	return w.screen.ToFrameBuffer(p)
}

func (w *Window) applyViewport() {
	w.setViewport(w.screen.GLViewport())
}

func (w *Window) glfwFrameBufferSizeCallback(_ *glfw.Window, width int, height int) {
	w.resize(width, height)
}

// resize applies the viewport for a new framebuffer size. The viewport is
// applied on every call, even when unchanged; handlers are only notified of
// actual changes.
//
func (w *Window) resize(width, height int) {
	changed := w.screen.SetSize(image.Pt(width, height))
	w.applyViewport()
	if h := w.onFrameBufferSize; h != nil && changed {
		h.OnFrameBufferSize(w, w.screen.Viewport())
	}
}

func (w *Window) glfwKeyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.Close()
	}
	if h := w.onKey; h != nil {
		h.OnKey(w, key, action, mods)
	}
}

// runner adapts a Handler to loop.Updater.
type runner struct {
	*Window
	h Handler
}

func (r *runner) FrameStart(t time.Time) {
	if fs, ok := r.h.(loop.FrameStarter); ok {
		fs.FrameStart(t)
	}
}

func (r *runner) Update() {
	r.h.Update()
}

func (r *runner) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.h.Draw()
}
