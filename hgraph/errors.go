package hgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hgraph package. Use errors.Is to branch; messages
// are never stringified parameters, context is attached via hgErrorf.
var (
	// ErrCapacityExceeded indicates AddNode would register more distinct
	// nodes than the max_nodes capacity declared to New.
	ErrCapacityExceeded = errors.New("hgraph: node capacity exceeded")

	// ErrUnknownNode indicates an external node id was referenced by
	// GetSlope but was never added.
	ErrUnknownNode = errors.New("hgraph: unknown node")

	// ErrUnknownHeight indicates an external height id was referenced by
	// GetSlope but was never added for that node.
	ErrUnknownHeight = errors.New("hgraph: unknown height")

	// ErrGraphFrozen indicates a mutator (AddNode/AddHeight/AddEdge/
	// AddStay/AddDecrease) was called after Freeze.
	ErrGraphFrozen = errors.New("hgraph: graph is frozen")
)

func hgErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
