package widget

import (
	uiloader "github.com/bogrendigital/ui-loader"
	"github.com/bogrendigital/ui-loader/layout"
)

// Container groups child widgets and stacks them along its style's Direction.
// The root container of a loaded description is the surface the editor shell
// resizes; everything else hangs under it.
type Container struct {
	Base
	children   []Widget
	background uiloader.Color
	hasBg      bool
}

// NewContainer returns an empty container.
func NewContainer(id string) *Container {
	return &Container{Base: NewBase(id)}
}

// SetBackground gives the container an opaque fill behind its children.
func (c *Container) SetBackground(col uiloader.Color) {
	c.background = col
	c.hasBg = true
}

// ClearBackground removes the container's fill.
func (c *Container) ClearBackground() {
	c.background = uiloader.Color{}
	c.hasBg = false
}

// AddChild appends a child. The container does not take ownership in the
// lifecycle sense; the loader's tracker does.
func (c *Container) AddChild(w Widget) {
	c.children = append(c.children, w)
}

// Children returns the child widgets in paint order.
func (c *Container) Children() []Widget {
	return c.children
}

// RemoveAll detaches every child.
func (c *Container) RemoveAll() {
	c.children = nil
}

// LayoutChildren adapts the child list for the layout engine.
func (c *Container) LayoutChildren() []layout.Layoutable {
	out := make([]layout.Layoutable, len(c.children))
	for i, ch := range c.children {
		out[i] = ch
	}
	return out
}

// NaturalSize returns the container's preferred size given its children.
func (c *Container) NaturalSize() uiloader.Size {
	return layout.Natural(c)
}

// Paint fills the background, if any, then paints children in order.
func (c *Container) Paint(s uiloader.Surface) {
	if c.hasBg {
		s.FillRect(c.bounds, c.background)
	}
	for _, ch := range c.children {
		ch.Paint(s)
	}
}
