package fbview_test

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"testing"

	"github.com/db47h/fbview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_SetSize(t *testing.T) {
	s := fbview.NewScreen(nes, image.Pt(640, 480))
	assert.Equal(t, nes, s.Logical())
	assert.Equal(t, image.Pt(640, 480), s.Size())
	assert.Equal(t, image.Rect(46, 0, 594, 480), s.Viewport())

	x, y, w, h := s.GLViewport()
	assert.Equal(t, [4]int32{46, 0, 548, 480}, [4]int32{x, y, w, h})

	assert.False(t, s.SetSize(image.Pt(640, 480)))
	assert.True(t, s.SetSize(image.Pt(256, 224)))
	assert.Equal(t, image.Rect(0, 0, 256, 224), s.Viewport())

	// the viewport is unchanged, the physical size is not
	assert.False(t, s.SetSize(image.Pt(257, 224)))
	assert.Equal(t, image.Pt(257, 224), s.Size())

	assert.True(t, s.SetSize(image.Point{}))
	assert.True(t, s.Viewport().Empty())
}

func TestScreen_ToFrameBuffer(t *testing.T) {
	s := fbview.NewScreen(nes, image.Pt(640, 480))
	tests := []struct {
		p    fbview.Point
		want image.Point
		ok   bool
	}{
		{fbview.Pt(46, 0), image.Pt(0, 0), true},
		{fbview.Pt(45.9, 10), image.Point{}, false},
		{fbview.Pt(593.9, 479.9), image.Pt(255, 223), true},
		{fbview.Pt(594, 100), image.Point{}, false},
		{fbview.Pt(320, 240), image.Pt(128, 112), true},
		{fbview.Pt(-1, -1), image.Point{}, false},
	}
	for _, tt := range tests {
		got, ok := s.ToFrameBuffer(tt.p)
		assert.Equal(t, tt.ok, ok, "%v", tt.p)
		assert.Equal(t, tt.want, got, "%v", tt.p)
	}
}

func TestScreen_ToFrameBufferOddMargins(t *testing.T) {
	// 77 pixels of vertical margin: 38 at the bottom, 39 at the top.
	s := fbview.NewScreen(nes, image.Pt(256, 301))
	require.Equal(t, image.Rect(0, 38, 256, 262), s.Viewport())

	_, ok := s.ToFrameBuffer(fbview.Pt(0, 38.5))
	assert.False(t, ok)
	p, ok := s.ToFrameBuffer(fbview.Pt(0, 39))
	assert.True(t, ok)
	assert.Equal(t, image.Pt(0, 0), p)
	p, ok = s.ToFrameBuffer(fbview.Pt(255.5, 262.5))
	assert.True(t, ok)
	assert.Equal(t, image.Pt(255, 223), p)
	_, ok = s.ToFrameBuffer(fbview.Pt(0, 263))
	assert.False(t, ok)
}

func TestScreen_logging(t *testing.T) {
	orig := fbview.Logger()
	t.Cleanup(func() { fbview.SetLogger(orig) })

	var buf bytes.Buffer
	fbview.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	s := fbview.NewScreen(nes, image.Pt(640, 480))
	assert.Contains(t, buf.String(), "msg=viewport")

	buf.Reset()
	s.SetSize(image.Pt(0, 0))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "empty viewport")
}

func TestSetLoggerNil(t *testing.T) {
	orig := fbview.Logger()
	t.Cleanup(func() { fbview.SetLogger(orig) })

	fbview.SetLogger(nil)
	require.NotNil(t, fbview.Logger())
	assert.False(t, fbview.Logger().Enabled(context.Background(), slog.LevelError))
}

func TestPoint(t *testing.T) {
	p := fbview.Pt(3.5, 4).Sub(fbview.Pt(1, 1))
	assert.Equal(t, fbview.Pt(2.5, 3), p)

	r := image.Rect(0, 0, 3, 3)
	assert.True(t, fbview.Pt(0, 0).In(r))
	assert.True(t, fbview.Pt(2.99, 2.99).In(r))
	assert.False(t, fbview.Pt(3, 0).In(r))
	assert.False(t, fbview.Pt(0, -0.01).In(r))
}
