package ffi

import (
	"errors"
	"fmt"
)

// ErrUnknownHandle indicates a Handle not currently registered (never
// created, or already Destroyed) was passed to a Registry method.
var ErrUnknownHandle = errors.New("ffi: unknown handle")

// ErrUnknownCheckMode indicates a CheckMode value outside the recognized set
// (Relational, OrderReduced, FWK, SLA) was passed to Registry.Check.
var ErrUnknownCheckMode = errors.New("ffi: unknown check mode")

func ffiErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
