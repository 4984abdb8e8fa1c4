package glutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorModel(t *testing.T) {
	c := ColorModel.Convert(color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, Color{R: 1, A: 1}, c)

	c = ColorModel.Convert(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80})
	glc := c.(Color)
	assert.InDelta(t, 0.502, glc.R, 0.001)
	assert.InDelta(t, 0.502, glc.A, 0.001)

	same := Color{G: .5, A: 1}
	assert.Equal(t, same, ColorModel.Convert(same))
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := Color{R: 1, B: 0.5, A: 1}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x7fff), b)
	assert.Equal(t, uint32(0xffff), a)
}
