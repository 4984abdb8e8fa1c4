package debug

import (
	"io"

	"github.com/db47h/ofs"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace returns a font face of the given size in points for the TrueType
// font name in fsys. An empty name selects the built-in Go Regular font.
//
func LoadFace(fsys ofs.FileSystem, name string, size float64) (font.Face, error) {
	data := goregular.TTF
	if name != "" {
		if fsys == nil {
			return nil, errors.Errorf("load font %s: no file system", name)
		}
		f, err := fsys.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "load font")
		}
		defer f.Close()
		if data, err = io.ReadAll(f); err != nil {
			return nil, errors.Wrapf(err, "load font %s", name)
		}
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse font %s", name)
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}
