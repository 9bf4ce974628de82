package resize

import (
	"image"

	"github.com/disintegration/gift"
)

// Box samples by averaging every source pixel that falls into a target cell.
type Box struct{}

func (Box) Sample(src image.Image, w, h int) (image.Image, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	g := gift.New(gift.Resize(w, h, gift.BoxResampling))
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst, nil
}
