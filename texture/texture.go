// Package texture wraps OpenGL 2D RGBA textures.
//
package texture

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// FilterMode selects how to filter textures.
//
type FilterMode int32

// FilterMode values map directly to their OpenGL equivalents.
//
const (
	Nearest FilterMode = gl.NEAREST
	Linear  FilterMode = gl.LINEAR
)

// String returns "nearest" or "linear".
//
func (f FilterMode) String() string {
	b, err := f.MarshalText()
	if err != nil {
		return "unknown"
	}
	return string(b)
}

// MarshalText implements encoding.TextMarshaler.
//
func (f FilterMode) MarshalText() ([]byte, error) {
	switch f {
	case Nearest:
		return []byte("nearest"), nil
	case Linear:
		return []byte("linear"), nil
	}
	return nil, errors.Errorf("invalid filter mode %#x", int32(f))
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "nearest" and
// "linear".
//
func (f *FilterMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "nearest":
		*f = Nearest
	case "linear":
		*f = Linear
	default:
		return errors.Errorf("invalid filter mode %q", text)
	}
	return nil
}

// WrapMode selects how textures wrap when texture coordinates get outside of
// the range [0, 1].
//
type WrapMode int32

const ClampToEdge WrapMode = gl.CLAMP_TO_EDGE

// A Texture is an OpenGL RGBA texture.
//
type Texture struct {
	width  int
	height int
	glID   uint32
}

type tp struct {
	wrapS, wrapT         WrapMode
	minFilter, magFilter FilterMode
}

// Parameter is implemented by functions setting texture parameters. See New.
//
type Parameter interface {
	set(*tp)
}

type optionFunc func(*tp)

func (f optionFunc) set(p *tp) {
	f(p)
}

// Wrap sets the GL_TEXTURE_WRAP_S and GL_TEXTURE_WRAP_T texture parameters.
//
func Wrap(wrapS, wrapT WrapMode) Parameter {
	return optionFunc(func(p *tp) {
		p.wrapS = wrapS
		p.wrapT = wrapT
	})
}

// Filter sets the GL_TEXTURE_MIN_FILTER and GL_TEXTURE_MAG_FILTER texture parameters.
//
func Filter(min, mag FilterMode) Parameter {
	return optionFunc(func(p *tp) {
		p.minFilter = min
		p.magFilter = mag
	})
}

// New returns a new uninitialized texture of the given width and height.
//
func New(width, height int, params ...Parameter) *Texture {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	t := &Texture{width: width, height: height, glID: tex}
	t.setParams(params...)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	return t
}

func (t *Texture) setParams(params ...Parameter) {
	var tp tp
	for _, p := range params {
		p.set(&tp)
	}
	if tp.wrapS != 0 {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(tp.wrapS))
	}
	if tp.wrapT != 0 {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(tp.wrapT))
	}
	if tp.minFilter != 0 {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(tp.minFilter))
	}
	if tp.magFilter != 0 {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(tp.magFilter))
	}
}

// Bind binds the texture to texture unit 0.
//
func (t *Texture) Bind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.glID)
}

// Upload replaces the whole texture content with the pixels of img, which
// must be of the same size as the texture.
//
func (t *Texture) Upload(img *image.RGBA) {
	t.SetSubImage(image.Rectangle{Max: t.Size()}, img, img.Bounds().Min)
}

// SetSubImage draws src to the texture. It works identically to draw.Draw with op set to draw.Src.
//
func (t *Texture) SetSubImage(dr image.Rectangle, src image.Image, sp image.Point) {
	var (
		pix *uint8
		sz  = dr.Size()
		sr  = image.Rectangle{Min: sp, Max: sp.Add(sz)}
	)
	if sz.X == 0 || sz.Y == 0 {
		return
	}
	if i, ok := src.(*image.RGBA); ok && sr == i.Bounds() && i.Stride == 4*sz.X {
		pix = &i.Pix[0]
	} else {
		r := image.Rectangle{Max: sz}
		dst := image.NewRGBA(r)
		draw.Draw(dst, r, src, sp, draw.Src)
		pix = &dst.Pix[0]
	}

	gl.BindTexture(gl.TEXTURE_2D, t.glID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(dr.Min.X), int32(dr.Min.Y), int32(sz.X), int32(sz.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

// Size returns the size of the texture.
//
func (t *Texture) Size() image.Point {
	return image.Point{t.width, t.height}
}

// Delete deletes the texture.
//
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.glID)
}
