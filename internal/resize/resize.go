package resize

import (
	"errors"
	"fmt"
	"image"

	"github.com/nfnt/resize"
	"github.com/qeesung/image2ascii/convert"
	"github.com/qeesung/image2ascii/terminal"
)

// MaxPixels bounds the area of a sampling target.
const MaxPixels = 1 << 24

var (
	ErrInvalidSize = errors.New("target size must be at least 1x1")
	ErrTooLarge    = fmt.Errorf("target size exceeds %d pixels", MaxPixels)
)

// checkSize rejects targets that are empty or too large to allocate.
func checkSize(w, h int) error {
	if w < 1 || h < 1 {
		return ErrInvalidSize
	}
	if w > MaxPixels/h {
		return fmt.Errorf("%dx%d: %w", w, h, ErrTooLarge)
	}
	return nil
}

// Sampler scales a source image onto a grid of exactly w x h pixels.
type Sampler interface {
	Sample(src image.Image, w, h int) (image.Image, error)
}

// Resizer samples with a Lanczos3 filter.
type Resizer struct {
	resizeHandler *convert.ImageResizeHandler
}

func NewResizer() *Resizer {
	return &Resizer{
		resizeHandler: convert.NewResizeHandler().(*convert.ImageResizeHandler),
	}
}

func (r *Resizer) Sample(img image.Image, w, h int) (image.Image, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3), nil
}

// FitWidth returns the largest column count whose rendered output, with rows
// scaled by aspect, still fits inside a boxW x boxH character box.
func (r *Resizer) FitWidth(srcW, srcH, boxW, boxH int, aspect float64) int {
	if srcW <= 0 || srcH <= 0 || boxW <= 0 || boxH <= 0 || !(aspect > 0) {
		return 1
	}
	neww, _ := r.resizeHandler.CalcFitSize(float64(boxW), float64(boxH), float64(srcW), float64(srcH)*aspect)
	if neww < 1 {
		return 1
	}
	return neww
}

// TerminalSize reports the size of the controlling terminal in character cells.
func TerminalSize() (int, int, error) {
	return terminal.NewTerminalAccessor().ScreenSize()
}
