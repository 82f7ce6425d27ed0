package widget

import (
	"image"

	uiloader "github.com/bogrendigital/ui-loader"
)

// Placeholder dimensions for images whose resource is absent.
const placeholderSize = 32

var placeholderFill = uiloader.Color{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}

// Image displays a decoded image resource, or a flat placeholder when the
// named resource was absent or undecodable.
type Image struct {
	Base
	name string
	img  image.Image
}

// NewImage returns an image widget for a decoded resource.
func NewImage(id, name string, img image.Image) *Image {
	return &Image{Base: NewBase(id), name: name, img: img}
}

// NewPlaceholder returns an image widget standing in for a missing resource.
func NewPlaceholder(id, name string) *Image {
	return &Image{Base: NewBase(id), name: name}
}

// ResourceName returns the resource name the widget was built from.
func (im *Image) ResourceName() string { return im.name }

// Placeholder reports whether the widget has no decoded image.
func (im *Image) Placeholder() bool { return im.img == nil }

// IntrinsicSize returns the image's pixel dimensions, or the placeholder size.
func (im *Image) IntrinsicSize() uiloader.Size {
	if im.img == nil {
		return uiloader.Size{W: placeholderSize, H: placeholderSize}
	}
	b := im.img.Bounds()
	return uiloader.Size{W: b.Dx(), H: b.Dy()}
}

// Paint scales the image into its bounds, or fills the placeholder color.
func (im *Image) Paint(s uiloader.Surface) {
	if im.img == nil {
		s.FillRect(im.bounds, placeholderFill)
		return
	}
	s.DrawImage(im.bounds, im.img)
}
