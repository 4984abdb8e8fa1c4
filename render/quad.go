// Package render draws a logical framebuffer texture as a quad covering the
// current viewport.
//
package render

import (
	"github.com/db47h/fbview/glutil"
	"github.com/db47h/fbview/texture"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

const floatsPerVertex = 4

// quad vertices: x, y, u, v. The v axis is flipped so that the first row of
// the framebuffer is drawn at the top of the viewport.
var vertices = [...]float32{
	-1, -1, 0, 1,
	-1, 1, 0, 0,
	1, 1, 1, 0,
	1, -1, 1, 1,
}

var indices = [...]uint32{0, 1, 3, 1, 2, 3}

// A Quad draws a texture over the whole viewport.
//
type Quad struct {
	tex      *texture.Texture
	program  glutil.Program
	uTexture int32
	vao      uint32
	vbo      uint32
	ebo      uint32
}

// NewQuad compiles the given shaders and uploads the quad geometry.
// The vertex shader must declare the aPos and aTexCoord vec2 attributes and
// the fragment shader the uTexture sampler.
//
func NewQuad(tex *texture.Texture, vertexSrc, fragmentSrc []byte) (*Quad, error) {
	program, err := loadProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	aPos, err := program.AttribLocation("aPos")
	if err != nil {
		program.Delete()
		return nil, err
	}
	aTexCoord, err := program.AttribLocation("aTexCoord")
	if err != nil {
		program.Delete()
		return nil, err
	}

	q := &Quad{tex: tex, program: program, uTexture: program.UniformLocation("uTexture")}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(&vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(aPos, 2, gl.FLOAT, false, floatsPerVertex*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(aPos)
	gl.VertexAttribPointer(aTexCoord, 2, gl.FLOAT, false, floatsPerVertex*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(aTexCoord)

	gl.GenBuffers(1, &q.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return q, nil
}

func loadProgram(vertexSrc, fragmentSrc []byte) (glutil.Program, error) {
	vertex, err := glutil.NewShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer vertex.Delete()
	frag, err := glutil.NewShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer frag.Delete()

	program, err := glutil.NewProgram(vertex, frag)
	if err != nil {
		return 0, errors.Wrap(err, "quad program")
	}
	return program, nil
}

// Texture returns the texture drawn by the quad.
//
func (q *Quad) Texture() *texture.Texture {
	return q.tex
}

// Draw draws the quad in the active viewport.
//
func (q *Quad) Draw() {
	q.program.Use()
	gl.Uniform1i(q.uTexture, 0)
	q.tex.Bind()
	gl.BindVertexArray(q.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete releases GL resources held by the quad. The texture is not deleted.
//
func (q *Quad) Delete() {
	gl.DeleteBuffers(1, &q.ebo)
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
	q.program.Delete()
}
