package widget

import (
	"image"

	uiloader "github.com/bogrendigital/ui-loader"
)

// OpKind identifies a recorded paint operation.
type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpDrawImage
	OpDrawText
)

// Op is one recorded paint call.
type Op struct {
	Image image.Image
	Text  string
	Rect  uiloader.Rect
	Color uiloader.Color
	Kind  OpKind
}

// Recorder is a Surface that records paint calls instead of rasterizing.
// Tests and the preview harness use it to assert on paint order and geometry.
type Recorder struct {
	Ops []Op
}

var _ uiloader.Surface = (*Recorder)(nil)

// FillRect records a fill.
func (r *Recorder) FillRect(rect uiloader.Rect, c uiloader.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

// DrawImage records an image blit.
func (r *Recorder) DrawImage(rect uiloader.Rect, img image.Image) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawImage, Rect: rect, Image: img})
}

// DrawText records a text draw.
func (r *Recorder) DrawText(rect uiloader.Rect, text string, c uiloader.Color, fontSize int) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawText, Rect: rect, Text: text, Color: c})
}

// Reset discards recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
