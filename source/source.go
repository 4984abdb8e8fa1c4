// Package source provides framebuffer content generators.
//
package source

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
	"math/rand/v2"
)

// A Source writes pixels to a framebuffer. Fill reports whether img has been
// modified and needs to be uploaded again.
//
type Source interface {
	Fill(img *image.RGBA) (changed bool)
}

// Static fills the framebuffer with a single color on the first call to Fill
// and leaves it untouched afterwards.
//
type Static struct {
	Color color.Color
	done  bool
}

// Fill implements Source.
//
func (s *Static) Fill(img *image.RGBA) bool {
	if s.done {
		return false
	}
	c := s.Color
	if c == nil {
		c = color.Transparent
	}
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	s.done = true
	return true
}

// Reset forces the next call to Fill to redraw the framebuffer.
//
func (s *Static) Reset() {
	s.done = false
}

// Noise fills the framebuffer with uniformly distributed random bytes on every
// call to Fill. All four channels, alpha included, are random.
//
type Noise struct {
	r *rand.Rand
}

// NewNoise returns a new Noise source seeded with seed.
//
func NewNoise(seed uint64) *Noise {
	return &Noise{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Fill implements Source.
//
func (n *Noise) Fill(img *image.RGBA) bool {
	w := 4 * img.Rect.Dx()
	if w <= 0 {
		return false
	}
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		off := img.PixOffset(img.Rect.Min.X, y)
		n.fill(img.Pix[off : off+w])
	}
	return true
}

func (n *Noise) fill(b []byte) {
	for len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, n.r.Uint64())
		b = b[8:]
	}
	if len(b) > 0 {
		v := n.r.Uint64()
		for i := range b {
			b[i] = byte(v >> (8 * i))
		}
	}
}
