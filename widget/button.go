package widget

import (
	uiloader "github.com/bogrendigital/ui-loader"
)

const (
	buttonPadX = 12
	buttonPadY = 6
)

var defaultButtonFill = uiloader.Color{R: 0x3A, G: 0x3A, B: 0x42, A: 0xFF}

// Button is a labeled rectangle. Input routing is the host's concern; the
// loader only builds and paints the tree.
type Button struct {
	Base
	label    string
	fill     uiloader.Color
	text     uiloader.Color
	fontSize int
}

// NewButton returns a button with default colors.
func NewButton(id, label string) *Button {
	return &Button{
		Base:     NewBase(id),
		label:    label,
		fill:     defaultButtonFill,
		text:     defaultTextColor,
		fontSize: defaultFontSize,
	}
}

// Label returns the button's label text.
func (b *Button) Label() string { return b.label }

// SetFill sets the button's background color.
func (b *Button) SetFill(c uiloader.Color) { b.fill = c }

// SetTextColor sets the label color.
func (b *Button) SetTextColor(c uiloader.Color) { b.text = c }

// IntrinsicSize returns the label extent plus padding.
func (b *Button) IntrinsicSize() uiloader.Size {
	sz := textExtent(b.label, b.fontSize)
	return uiloader.Size{W: sz.W + 2*buttonPadX, H: sz.H + 2*buttonPadY}
}

// Paint fills the button and draws its label.
func (b *Button) Paint(s uiloader.Surface) {
	s.FillRect(b.bounds, b.fill)
	s.DrawText(b.bounds.Inset(buttonPadY), b.label, b.text, b.fontSize)
}
