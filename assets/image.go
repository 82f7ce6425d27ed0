package assets

import (
	"bytes"
	"image"

	// Registered decoders for the formats plugin art is shipped in.
	_ "image/jpeg"
	_ "image/png"

	"github.com/bogrendigital/ui-loader/errors"
)

// DecodeImage resolves a named resource and decodes it as an image.
//
// Absence and malformed bytes are both recoverable: the caller gets a
// structured error and decides whether to skip the image or show a
// placeholder.
func DecodeImage(p Provider, name string) (image.Image, error) {
	data, ok := p.Lookup(name)
	if !ok {
		return nil, errors.NotFound(errors.PhaseAssets, "image resource", name)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.DecodeFailed(name, err)
	}
	return img, nil
}
