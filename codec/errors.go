package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrTransformNotFound is returned when a transform is not found in the registry
	ErrTransformNotFound = errors.New("transform not found")

	// ErrInvalidParameter is returned when a configuration value is out of range
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidDimensions is returned when width, height or block size do not fit the transform
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrBufferSize is returned when a raw buffer does not hold width*height*3 bytes
	ErrBufferSize = errors.New("pixel buffer size does not match dimensions")

	// ErrTransformMismatch is the panic cause when coefficients are decoded by another transform
	ErrTransformMismatch = errors.New("transform does not match encoded coefficients")

	// ErrWrongDomain is wrapped by InvariantError panics
	ErrWrongDomain = errors.New("image is not in the required domain")
)

// InvariantError is the panic value raised when an operation reads a domain
// the image is not currently in, e.g. decoding before encoding. It signals a
// sequencing bug in the caller and is never returned as an error.
type InvariantError struct {
	Op   string
	Want Domain
	Have Domain
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %v (want %s, have %s)", e.Op, ErrWrongDomain, e.Want, e.Have)
}

func (e *InvariantError) Unwrap() error {
	return ErrWrongDomain
}
