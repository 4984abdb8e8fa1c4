package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/ofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShaders_defaults(t *testing.T) {
	vs, fs, err := LoadShaders(nil)
	require.NoError(t, err)
	assert.Equal(t, VertexShader, vs)
	assert.Equal(t, FragmentShader, fs)
}

func TestLoadShaders_override(t *testing.T) {
	dir := t.TempDir()
	frag := []byte("#version 330 core\nout vec4 fragColor;\nvoid main() { fragColor = vec4(1); }\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, FragmentShaderFile), frag, 0o644))

	var ovl ofs.Overlay
	require.NoError(t, ovl.Add(false, dir))

	vs, fs, err := LoadShaders(&ovl)
	require.NoError(t, err)
	assert.Equal(t, VertexShader, vs, "missing override falls back to the default")
	assert.Equal(t, frag, fs)
}

func TestQuadGeometry(t *testing.T) {
	// every vertex is referenced and both triangles share the diagonal 1-3
	seen := map[uint32]int{}
	for _, i := range indices {
		require.Less(t, int(i), len(vertices)/floatsPerVertex)
		seen[i]++
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 2, seen[1])
	assert.Equal(t, 2, seen[3])

	// top left corner of the quad samples the first texel row
	v := vertices[1*floatsPerVertex : 2*floatsPerVertex]
	assert.Equal(t, []float32{-1, 1, 0, 0}, v)
}
