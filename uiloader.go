package uiloader

import "image"

// Point is a position in surface coordinates, in pixels.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// RectOf returns a rectangle at origin with the given size.
func RectOf(s Size) Rect {
	return Rect{W: s.W, H: s.H}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks the rectangle by n pixels on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Contains reports whether inner lies fully within r.
// An empty inner rectangle is contained if its origin is.
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X && inner.Y >= r.Y &&
		inner.Right() <= r.Right() && inner.Bottom() <= r.Bottom()
}

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// Surface is the paint target handed to the shell and the widget tree by the
// host on every redraw. Implementations are not required to be thread-safe;
// all painting happens on the host's UI thread.
type Surface interface {
	// FillRect fills the rectangle with a solid color.
	FillRect(r Rect, c Color)

	// DrawImage scales img into the rectangle.
	DrawImage(r Rect, img image.Image)

	// DrawText renders a single line of text clipped to the rectangle.
	DrawText(r Rect, text string, c Color, fontSize int)
}
