package fbview

import (
	"image"
)

// Letterbox returns the largest rectangle with the same aspect ratio as
// logical that fits in a window of size physical, centered in that window.
//
// The result is what one would get by scaling logical with
//
//	scale = min(physical.X/logical.X, physical.Y/logical.Y)
//
// and truncating the scaled size to whole pixels. The computation is carried
// out on integers so that the limiting axis always maps to the exact window
// dimension. Margins on the other axis differ by at most one pixel, the extra
// pixel going to the far side (right or top in GL coordinates).
//
// Negative physical dimensions are treated as 0. A window with a zero
// dimension yields an empty rectangle located at the center of the window.
// Letterbox panics if either dimension of logical is not strictly positive.
//
func Letterbox(logical, physical image.Point) image.Rectangle {
	if logical.X <= 0 || logical.Y <= 0 {
		panic("fbview: non-positive logical size")
	}
	pw, ph := max(physical.X, 0), max(physical.Y, 0)
	var w, h int
	if pw*logical.Y <= ph*logical.X {
		// width is the limiting axis: horizontal bands
		w, h = pw, pw*logical.Y/logical.X
	} else {
		w, h = ph*logical.X/logical.Y, ph
	}
	x, y := (pw-w)/2, (ph-h)/2
	return image.Rect(x, y, x+w, y+h)
}
