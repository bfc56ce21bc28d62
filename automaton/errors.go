package automaton

import (
	"errors"
	"fmt"
)

// ErrUnregisteredProposition indicates a Label referenced a proposition
// index never returned by RegisterProposition.
var ErrUnregisteredProposition = errors.New("automaton: unregistered proposition")

// ErrBackendContract indicates an AutomatonBackend contract violation.
// ReferenceBackend.Contains returns it when given a nil Automaton; other
// violations (an edge referencing a state never returned by NewStates, an
// Automaton built by a different backend instance) are not detected.
var ErrBackendContract = errors.New("automaton: backend contract violation")

func automatonErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
