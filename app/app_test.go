package app

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

type viewportCall struct {
	x, y, width, height int32
}

type viewportRecorder []viewportCall

func (r *viewportRecorder) set(x, y, width, height int32) {
	*r = append(*r, viewportCall{x, y, width, height})
}

type sizeRecorder []image.Rectangle

func (r *sizeRecorder) OnFrameBufferSize(_ *Window, viewport image.Rectangle) {
	*r = append(*r, viewport)
}

func TestNewScreenWindow(t *testing.T) {
	var calls viewportRecorder
	w := newScreenWindow(image.Pt(256, 224), image.Pt(640, 480), calls.set)
	assert.Equal(t, viewportRecorder{{46, 0, 548, 480}}, calls)
	assert.Equal(t, image.Rect(46, 0, 594, 480), w.Screen().Viewport())
}

func TestWindow_resize(t *testing.T) {
	var (
		calls   viewportRecorder
		resized sizeRecorder
	)
	w := newScreenWindow(image.Pt(256, 224), image.Pt(640, 480), calls.set)
	w.onFrameBufferSize = &resized

	w.resize(1000, 100)
	w.resize(1000, 100)
	w.resize(256, 224)
	w.resize(0, 0)

	assert.Equal(t, viewportRecorder{
		{46, 0, 548, 480},
		{443, 0, 114, 100},
		{443, 0, 114, 100},
		{0, 0, 256, 224},
		{0, 0, 0, 0},
	}, calls)
	assert.Equal(t, sizeRecorder{
		image.Rect(443, 0, 557, 100),
		image.Rect(0, 0, 256, 224),
		image.Rectangle{},
	}, resized)
}

func TestWindow_resizeNoHandler(t *testing.T) {
	var calls viewportRecorder
	w := newScreenWindow(image.Pt(256, 224), image.Pt(640, 480), calls.set)
	w.resize(640, 480)
	assert.Len(t, calls, 2)
}
