// Package debug provides frame timing statistics and an on-screen text
// overlay drawn directly in the logical framebuffer.
//
package debug

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const samples = 32

// Timer computes a moving average over the last 32 durations.
//
type Timer struct {
	times [samples]time.Duration
	index int
	n     int
}

func (t *Timer) Add(dt time.Duration) {
	t.times[t.index] = dt
	t.index = (t.index + 1) & (samples - 1)
	if t.n < samples {
		t.n++
	}
}

func (t *Timer) Average() time.Duration {
	if t.n == 0 {
		return 0
	}
	var avg time.Duration
	for _, dt := range t.times[:t.n] {
		avg += dt
	}
	return avg / time.Duration(t.n)
}

func (t *Timer) AveragePerSecond() float64 {
	avg := t.Average()
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Corner selects where an Overlay draws its text box.
//
type Corner int

const (
	TopLeft Corner = iota
	TopRight
)

// Overlay draws a single line of text over an opaque box in a corner of an
// image.
//
type Overlay struct {
	Face   font.Face   // defaults to basicfont.Face7x13
	Fg, Bg color.Color // default to white on black
	Corner Corner
}

const pad = 1

// Draw draws s in dst and returns the bounds of the box.
//
func (o *Overlay) Draw(dst draw.Image, s string) image.Rectangle {
	face := o.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	fg, bg := o.Fg, o.Bg
	if fg == nil {
		fg = color.White
	}
	if bg == nil {
		bg = color.Black
	}

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face}
	m := face.Metrics()
	sz := image.Pt(d.MeasureString(s).Ceil()+2*pad, m.Height.Ceil()+2*pad)

	b := dst.Bounds()
	var box image.Rectangle
	switch o.Corner {
	case TopRight:
		box = image.Rect(b.Max.X-sz.X, b.Min.Y, b.Max.X, b.Min.Y+sz.Y)
	default:
		box = image.Rectangle{Min: b.Min, Max: b.Min.Add(sz)}
	}
	box = box.Intersect(b)
	draw.Draw(dst, box, image.NewUniform(bg), image.Point{}, draw.Src)

	d.Dot = fixed.P(box.Min.X+pad, box.Min.Y+pad+m.Ascent.Ceil())
	d.DrawString(s)
	return box
}
