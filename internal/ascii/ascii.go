package ascii

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/koki-develop/asciify/internal/resize"
)

// Art is a rendered grid, one string per row.
type Art []string

// String joins the rows, terminating each one with a newline.
func (a Art) String() string {
	b := new(strings.Builder)
	for _, row := range a {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

func (a Art) Width() int {
	if len(a) == 0 {
		return 0
	}
	return utf8.RuneCountInString(a[0])
}

func (a Art) Height() int { return len(a) }

// Ramp maps luminance to characters. Index 0 is used for the darkest pixels.
type Ramp []rune

func NewRamp(charset string, invert bool) (Ramp, error) {
	if charset == "" {
		return nil, &InvalidParameterError{Name: "charset", Err: ErrEmptyCharset}
	}
	if !utf8.ValidString(charset) {
		return nil, &InvalidParameterError{Name: "charset", Err: ErrInvalidCharset}
	}
	r := Ramp(charset)
	if invert {
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
	}
	return r, nil
}

// Char picks the character for a luminance value in [0, 255].
func (r Ramp) Char(gray float64) rune {
	idx := int(math.Floor(gray / 255 * float64(len(r))))
	if idx > len(r)-1 {
		idx = len(r) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return r[idx]
}

// Map renders every pixel of img in row-major order.
func (r Ramp) Map(img image.Image) Art {
	bounds := img.Bounds()
	rows := make(Art, 0, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		b := new(strings.Builder)
		b.Grow(bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// straight (non-premultiplied) channels; alpha is ignored
			pixel := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			b.WriteRune(r.Char(Luminance(pixel.R, pixel.G, pixel.B)))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Luminance weighs the channels 0.21/0.71/0.07. These are not the Rec. 601
// or Rec. 709 coefficients and must stay as they are.
func Luminance(r, g, b uint8) float64 {
	// explicit conversions keep the products from being fused into FMA
	// instructions, so results match across architectures
	return float64(0.21*float64(r)) + float64(0.71*float64(g)) + float64(0.07*float64(b))
}

// TargetSize computes the grid the source is sampled onto. Non-positive
// maxWidth or aspect fall back to their defaults; both results are at least 1.
func TargetSize(srcW, srcH, maxWidth int, aspect float64) (int, int) {
	p := Params{MaxWidth: maxWidth, AspectCorrection: aspect}.Normalize()

	w := p.MaxWidth
	h := 1
	if srcW > 0 && srcH > 0 {
		ratio := float64(srcW) / float64(srcH)
		v := math.Round(float64(w) / ratio * p.AspectCorrection)
		if v > math.MaxInt32 {
			v = math.MaxInt32
		}
		h = int(v)
	}
	return max(1, w), max(1, h)
}

// MapToASCII renders an already sampled pixel grid.
func MapToASCII(img image.Image, charset string, invert bool) (Art, error) {
	ramp, err := NewRamp(charset, invert)
	if err != nil {
		return nil, err
	}
	return ramp.Map(img), nil
}

// Generate samples src onto the grid described by p and renders it. A nil
// sampler means one is created for p.Filter.
func Generate(src image.Image, p Params, s resize.Sampler) (Art, error) {
	if src == nil {
		return nil, &InvalidInputError{Reason: "no image"}
	}
	sz := src.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("image has no pixels (%dx%d)", sz.X, sz.Y)}
	}

	ramp, err := NewRamp(p.Charset, p.Invert)
	if err != nil {
		return nil, err
	}

	p = p.Normalize()
	w, h := TargetSize(sz.X, sz.Y, p.MaxWidth, p.AspectCorrection)

	if s == nil {
		s = resize.NewSampler(p.Filter)
	}
	buf, err := s.Sample(src, w, h)
	if err != nil {
		return nil, &SamplingError{Width: w, Height: h, Err: err}
	}
	if got := buf.Bounds().Size(); got.X != w || got.Y != h {
		return nil, &SamplingError{Width: w, Height: h, Err: fmt.Errorf("sampler returned %dx%d", got.X, got.Y)}
	}

	return ramp.Map(buf), nil
}

// Converter keeps one sampler per filter so sampling surfaces are reused
// across calls.
type Converter struct {
	samplers map[resize.Filter]resize.Sampler
}

func NewConverter() *Converter {
	samplers := make(map[resize.Filter]resize.Sampler)
	for _, f := range resize.Filters() {
		samplers[f] = resize.NewSampler(f)
	}
	return &Converter{samplers: samplers}
}

func (c *Converter) ImageToASCII(img image.Image, p Params) (Art, error) {
	return Generate(img, p, c.samplers[p.Filter])
}
