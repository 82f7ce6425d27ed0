package widget

import (
	uiloader "github.com/bogrendigital/ui-loader"
)

const defaultFontSize = 14

var defaultTextColor = uiloader.RGB(0xE6, 0xE6, 0xE6)

// Label is a single line of static text.
type Label struct {
	Base
	text     string
	color    uiloader.Color
	fontSize int
}

// NewLabel returns a label with default text color and font size.
func NewLabel(id, text string) *Label {
	return &Label{
		Base:     NewBase(id),
		text:     text,
		color:    defaultTextColor,
		fontSize: defaultFontSize,
	}
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// SetTextColor sets the text color.
func (l *Label) SetTextColor(c uiloader.Color) { l.color = c }

// SetFontSize sets the font size in pixels.
func (l *Label) SetFontSize(px int) {
	if px > 0 {
		l.fontSize = px
	}
}

// IntrinsicSize returns the approximated text extent.
func (l *Label) IntrinsicSize() uiloader.Size {
	return textExtent(l.text, l.fontSize)
}

// Paint draws the text clipped to the label's bounds.
func (l *Label) Paint(s uiloader.Surface) {
	s.DrawText(l.bounds, l.text, l.color, l.fontSize)
}
