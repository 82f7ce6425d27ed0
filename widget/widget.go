package widget

import (
	uiloader "github.com/bogrendigital/ui-loader"
	"github.com/bogrendigital/ui-loader/layout"
)

// Widget is a node in the live tree built from a UI description. Every widget
// participates in layout and paints itself onto a Surface.
type Widget interface {
	layout.Layoutable

	// ID returns the element id from the description, or "" when unset.
	ID() string

	// SetStyle replaces the widget's layout properties. The loader applies
	// the description's style after construction.
	SetStyle(layout.Style)

	// Paint draws the widget within its current bounds. Called on the host's
	// UI thread on every redraw; implementations must not allocate.
	Paint(s uiloader.Surface)
}

// Base carries the state every widget shares: id, style, computed bounds.
// Concrete widgets embed it.
type Base struct {
	id     string
	style  layout.Style
	bounds uiloader.Rect
}

// NewBase returns a Base with the given id.
func NewBase(id string) Base {
	return Base{id: id}
}

// ID returns the element id.
func (b *Base) ID() string { return b.id }

// LayoutStyle returns the widget's layout properties.
func (b *Base) LayoutStyle() layout.Style { return b.style }

// SetStyle replaces the widget's layout properties.
func (b *Base) SetStyle(s layout.Style) { b.style = s }

// SetBounds stores computed geometry.
func (b *Base) SetBounds(r uiloader.Rect) { b.bounds = r }

// Bounds returns the last computed geometry.
func (b *Base) Bounds() uiloader.Rect { return b.bounds }

// LayoutChildren returns nil; leaf widgets have no children.
func (b *Base) LayoutChildren() []layout.Layoutable { return nil }

// IntrinsicSize returns the zero size; widgets with content override it.
func (b *Base) IntrinsicSize() uiloader.Size { return uiloader.Size{} }

// textExtent approximates single-line text metrics so layout stays
// deterministic across paint backends. Real glyph measurement is the
// surface's concern at paint time.
func textExtent(text string, fontSize int) uiloader.Size {
	n := 0
	for range text {
		n++
	}
	return uiloader.Size{
		W: n * fontSize * 3 / 5,
		H: fontSize + fontSize/3,
	}
}
