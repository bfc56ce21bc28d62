package loader

import (
	"errors"
	"fmt"
)

// ErrMalformedJSON indicates the input did not match the documented
// {"Node":..., "Edge":...} shape.
var ErrMalformedJSON = errors.New("loader: malformed JSON graph")

// ErrUnknownFlagLetter indicates a flag-letter string contained a character
// outside {f,s,i,m,D,X,O,K,A}.
var ErrUnknownFlagLetter = errors.New("loader: unknown flag letter")

func loaderErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
