package resize

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"
)

// Surface is a reusable drawing area. It is cleared to transparent black
// before every draw, so pixels from an earlier, differently sized draw never
// leak into a new result.
type Surface struct {
	mu     sync.Mutex
	scaler draw.Scaler
	canvas *image.RGBA
}

func NewSurface(scaler draw.Scaler) *Surface {
	return &Surface{scaler: scaler}
}

func (s *Surface) Sample(src image.Image, w, h int) (img image.Image, err error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("failed to draw onto %dx%d surface: %v", w, h, r)
		}
	}()

	if s.canvas == nil || s.canvas.Bounds().Dx() != w || s.canvas.Bounds().Dy() != h {
		s.canvas = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.Draw(s.canvas, s.canvas.Bounds(), image.Transparent, image.Point{}, draw.Src)
	s.scaler.Scale(s.canvas, s.canvas.Bounds(), src, src.Bounds(), draw.Over, nil)

	// hand out a snapshot; the canvas is reused by the next call
	out := image.NewRGBA(s.canvas.Bounds())
	copy(out.Pix, s.canvas.Pix)
	return out, nil
}
