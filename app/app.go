// Package app runs a single GLFW window with an OpenGL 3.3 core context that
// displays a fixed size logical framebuffer, letterboxed to fit the window.
//
package app

import (
	"image"
	"image/color"
	"runtime"
	"time"
)

func init() {
	// GLFW and GL calls must be made from the main thread.
	runtime.LockOSThread()
}

// Handler is implemented by applications driven by Run.
//
// Init is called once the window and GL context are ready. Update and Draw are
// called once per frame; the window is cleared and the viewport set before
// Draw. Terminate is called before the window is destroyed.
//
type Handler interface {
	Init(*Window) error
	Update()
	Draw()
	Terminate() error
}

// FrameBufferSizeHandler is implemented by Handlers that want to be notified
// of viewport changes.
//
type FrameBufferSizeHandler interface {
	OnFrameBufferSize(w *Window, viewport image.Rectangle)
}

// WindowOption configures the window created by Run.
//
type WindowOption interface {
	set(*winCfg)
}

type winCfg struct {
	title        string
	w, h         int
	minW, minH   int
	resizable    bool
	hidden       bool
	swapInterval int
	minFT        time.Duration
	clearColor   color.Color
	logical      image.Point
}

func defaultConfig() winCfg {
	return winCfg{
		title:        "fbview",
		w:            640,
		h:            480,
		resizable:    true,
		swapInterval: 1,
		clearColor:   color.RGBA{R: 0xff, A: 0xff},
		logical:      image.Pt(256, 224),
	}
}

type winOption func(*winCfg)

func (f winOption) set(cfg *winCfg) {
	f(cfg)
}

func Title(title string) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.title = title
	})
}

// Size sets the initial window size in screen coordinates.
//
func Size(w, h int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.w, cfg.h = w, h
	})
}

// MinSize sets the minimum window size. A value of 0 leaves the corresponding
// dimension unconstrained.
//
func MinSize(w, h int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.minW, cfg.minH = w, h
	})
}

func Resizable(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.resizable = b
	})
}

func Visible(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.hidden = !b
	})
}

// SwapInterval sets the number of screen updates to wait for before swapping
// buffers. 0 disables vsync.
//
func SwapInterval(n int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.swapInterval = n
	})
}

// MinFrameTime caps the frame rate to time.Second/t. 0 means uncapped.
//
func MinFrameTime(t time.Duration) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.minFT = t
	})
}

// ClearColor sets the color of the margins around the viewport.
//
func ClearColor(c color.Color) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.clearColor = c
	})
}

// LogicalSize sets the size of the logical framebuffer. Both dimensions must
// be strictly positive.
//
func LogicalSize(w, h int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.logical = image.Pt(w, h)
	})
}
