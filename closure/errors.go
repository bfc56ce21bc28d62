package closure

import (
	"errors"
	"fmt"
)

// ErrInvalidFlags indicates an illegal Flags combination was passed to one
// of the Engine check methods: UseIdempotence combined with UseMinimality,
// or UseIdempotence combined with UseSCCCheck.
var ErrInvalidFlags = errors.New("closure: invalid flag combination")

func closureErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
