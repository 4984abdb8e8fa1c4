// Package glutil provides thin helpers over the OpenGL 3.3 core bindings:
// shader compilation, program linking and context queries.
//
// All functions must be called from the thread that owns the GL context.
//
package glutil

import (
	"image/color"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Init loads the OpenGL function pointers for the current context.
//
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "init OpenGL")
	}
	return nil
}

// GetGoString is a wrapper around GetString that returns a Go string.
//
func GetGoString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

// Version returns a human readable description of the current GL context.
//
func Version() string {
	return GetGoString(gl.VERSION) + " - " + GetGoString(gl.RENDERER)
}

// Viewport sets the active drawing region.
//
func Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// ClearColor sets the color used by gl.Clear.
//
func ClearColor(c color.Color) {
	glc := ColorModel.Convert(c).(Color)
	gl.ClearColor(glc.R, glc.G, glc.B, glc.A)
}

type Shader uint32

// NewShader compiles a shader of the given type. On failure, the returned
// error holds the compiler log.
//
func NewShader(typ uint32, source []byte) (Shader, error) {
	s := gl.CreateShader(typ)
	csrc, free := gl.Strs(string(source) + "\x00")
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetShaderInfoLog(s, n, nil, buf) })
		gl.DeleteShader(s)
		return 0, errors.Errorf("compile %s shader: %s", shaderType(typ), msg)
	}
	return Shader(s), nil
}

func (s Shader) Delete() {
	gl.DeleteShader(uint32(s))
}

func shaderType(typ uint32) string {
	switch typ {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	}
	return "unknown"
}

func infoLog(n int32, get func(*uint8)) string {
	if n <= 0 {
		return "(no log)"
	}
	buf := strings.Repeat("\x00", int(n+1))
	get(gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}

type Program uint32

// NewProgram links the given shaders into a new program. Shaders can be
// deleted once linked.
//
func NewProgram(shaders ...Shader) (Program, error) {
	p := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(p, uint32(s))
	}
	gl.LinkProgram(p)

	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetProgramInfoLog(p, n, nil, buf) })
		gl.DeleteProgram(p)
		return 0, errors.Errorf("link program: %s", msg)
	}
	for _, s := range shaders {
		gl.DetachShader(p, uint32(s))
	}
	return Program(p), nil
}

func (p Program) Delete() {
	gl.DeleteProgram(uint32(p))
}

func (p Program) Use() {
	gl.UseProgram(uint32(p))
}

func (p Program) AttribLocation(name string) (uint32, error) {
	r := gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
	if r < 0 {
		return ^uint32(0), errors.Errorf("unknown attribute %s", name)
	}
	return uint32(r), nil
}

func (p Program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}
