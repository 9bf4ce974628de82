package ascii

import (
	"math"

	"github.com/koki-develop/asciify/internal/resize"
)

const (
	DefaultMaxWidth         = 100
	DefaultAspectCorrection = 0.6
	DefaultCharset          = "@%#*+=-:. "
)

type Params struct {
	// MaxWidth is the number of output columns.
	MaxWidth int
	// Charset is ordered from the character used for the darkest pixels to
	// the one used for the lightest.
	Charset string
	Invert  bool
	// AspectCorrection scales the row count to make up for character cells
	// being taller than they are wide.
	AspectCorrection float64
	Filter           resize.Filter
}

func DefaultParams() Params {
	return Params{
		MaxWidth:         DefaultMaxWidth,
		Charset:          DefaultCharset,
		AspectCorrection: DefaultAspectCorrection,
	}
}

// Normalize replaces unusable numeric values with their defaults. The charset
// is left alone; an empty one is an error, not something to paper over.
func (p Params) Normalize() Params {
	if p.MaxWidth <= 0 {
		p.MaxWidth = DefaultMaxWidth
	}
	if !(p.AspectCorrection > 0) || math.IsInf(p.AspectCorrection, 1) {
		p.AspectCorrection = DefaultAspectCorrection
	}
	return p
}
