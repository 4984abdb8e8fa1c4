package fbview

import (
	"image"
)

// A Screen tracks the size of a physical display window and the viewport
// where a logical framebuffer of fixed size is drawn in that window.
//
// Viewport coordinates follow the OpenGL convention: (0,0) is the lower left
// corner of the window.
//
type Screen struct {
	logical  image.Point
	physical image.Point
	vp       image.Rectangle
}

// NewScreen returns a new screen for a logical framebuffer of size logical,
// shown in a window whose framebuffer is of size physical. The size should be
// updated whenever the size of the window framebuffer changes.
//
func NewScreen(logical, physical image.Point) *Screen {
	s := &Screen{logical: logical}
	s.SetSize(physical)
	return s
}

// SetSize sets the physical window size to sz and recomputes the viewport.
// It reports whether the viewport has changed.
//
func (s *Screen) SetSize(sz image.Point) (changed bool) {
	vp := Letterbox(s.logical, sz)
	s.physical = sz
	changed = vp != s.vp
	s.vp = vp
	if vp.Empty() {
		Logger().Warn("empty viewport", "physical", sz)
	} else {
		Logger().Debug("viewport", "physical", sz, "viewport", vp)
	}
	return changed
}

// Size returns the physical size.
//
func (s *Screen) Size() image.Point {
	return s.physical
}

// Logical returns the logical framebuffer size.
//
func (s *Screen) Logical() image.Point {
	return s.logical
}

// Viewport returns the current viewport.
//
func (s *Screen) Viewport() image.Rectangle {
	return s.vp
}

// GLViewport returns the viewport in a form suitable for glViewport.
//
func (s *Screen) GLViewport() (x, y, width, height int32) {
	return int32(s.vp.Min.X), int32(s.vp.Min.Y), int32(s.vp.Dx()), int32(s.vp.Dy())
}

// ToFrameBuffer converts window coordinates, with (0,0) in the upper left
// corner like cursor positions, to logical framebuffer pixel coordinates. The
// returned boolean is false if p falls outside of the viewport.
//
func (s *Screen) ToFrameBuffer(p Point) (image.Point, bool) {
	sz := s.vp.Size()
	// distance from the top of the window to the top of the viewport
	top := s.physical.Y - s.vp.Max.Y
	rel := p.Sub(Pt(float32(s.vp.Min.X), float32(top)))
	if !rel.In(image.Rectangle{Max: sz}) {
		return image.Point{}, false
	}
	x := int(rel.X * float32(s.logical.X) / float32(sz.X))
	y := int(rel.Y * float32(s.logical.Y) / float32(sz.Y))
	return image.Pt(min(x, s.logical.X-1), min(y, s.logical.Y-1)), true
}
