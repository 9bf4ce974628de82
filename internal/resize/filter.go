package resize

import (
	"fmt"
	"strings"

	"golang.org/x/image/draw"
)

type Filter int

const (
	// Bilinear is the zero value; it is what a browser canvas uses when
	// drawing a scaled image.
	Bilinear Filter = iota
	Nearest
	CatmullRom
	Lanczos
	BoxFilter
)

var filterNames = map[Filter]string{
	Bilinear:   "bilinear",
	Nearest:    "nearest",
	CatmullRom: "catmullrom",
	Lanczos:    "lanczos",
	BoxFilter:  "box",
}

func Filters() []Filter {
	return []Filter{Bilinear, Nearest, CatmullRom, Lanczos, BoxFilter}
}

func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Next cycles through Filters.
func (f Filter) Next() Filter {
	all := Filters()
	for i, v := range all {
		if v == f {
			return all[(i+1)%len(all)]
		}
	}
	return Bilinear
}

func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Bilinear, nil
	}
	for f, name := range filterNames {
		if name == s {
			return f, nil
		}
	}
	return Bilinear, fmt.Errorf("unknown filter %q", s)
}

// NewSampler returns a fresh sampler implementing f.
func NewSampler(f Filter) Sampler {
	switch f {
	case Nearest:
		return NewSurface(draw.NearestNeighbor)
	case CatmullRom:
		return NewSurface(draw.CatmullRom)
	case Lanczos:
		return NewResizer()
	case BoxFilter:
		return Box{}
	default:
		return NewSurface(draw.BiLinear)
	}
}
