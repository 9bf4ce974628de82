package ascii

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCharset   = errors.New("charset must not be empty")
	ErrInvalidCharset = errors.New("charset is not valid UTF-8")
)

// InvalidInputError reports a source that is not a usable decoded image.
type InvalidInputError struct {
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Reason, e.Err)
	}
	return "invalid input: " + e.Reason
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// SamplingError reports that no pixel data could be produced for the
// requested grid.
type SamplingError struct {
	Width  int
	Height int
	Err    error
}

func (e *SamplingError) Error() string {
	return fmt.Sprintf("failed to sample image at %dx%d: %v", e.Width, e.Height, e.Err)
}

func (e *SamplingError) Unwrap() error { return e.Err }

type InvalidParameterError struct {
	Name string
	Err  error
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %v", e.Name, e.Err)
}

func (e *InvalidParameterError) Unwrap() error { return e.Err }
