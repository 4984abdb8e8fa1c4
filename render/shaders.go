package render

import (
	"io"
	"io/fs"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

// Shader file names looked up by LoadShaders.
const (
	VertexShaderFile   = "quad.vert"
	FragmentShaderFile = "quad.frag"
)

// VertexShader is the default vertex shader. Positions are passed through
// as-is; the quad always covers the whole viewport.
var VertexShader = []byte(`#version 330 core
in vec2 aPos;
in vec2 aTexCoord;

out vec2 vTexCoord;

void main()
{
	gl_Position = vec4(aPos, 0.0, 1.0);
	vTexCoord = aTexCoord;
}
`)

// FragmentShader is the default fragment shader.
var FragmentShader = []byte(`#version 330 core
in vec2 vTexCoord;

out vec4 fragColor;

uniform sampler2D uTexture;

void main()
{
	fragColor = texture(uTexture, vTexCoord);
}
`)

// LoadShaders returns the vertex and fragment shader sources for the quad.
// Sources are read from VertexShaderFile and FragmentShaderFile in fsys. Files
// missing from fsys, or a nil fsys, yield the default shaders.
//
func LoadShaders(fsys ofs.FileSystem) (vertex, fragment []byte, err error) {
	if fsys == nil {
		return VertexShader, FragmentShader, nil
	}
	if vertex, err = loadShader(fsys, VertexShaderFile, VertexShader); err != nil {
		return nil, nil, err
	}
	if fragment, err = loadShader(fsys, FragmentShaderFile, FragmentShader); err != nil {
		return nil, nil, err
	}
	return vertex, fragment, nil
}

func loadShader(fsys ofs.FileSystem, name string, def []byte) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return def, nil
		}
		return nil, errors.Wrap(err, "load shader")
	}
	defer f.Close()
	src, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load shader %s", name)
	}
	return src, nil
}
