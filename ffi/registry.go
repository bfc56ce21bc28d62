package ffi

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ngorogiannis/cyclist/automaton"
	"github.com/ngorogiannis/cyclist/closure"
	"github.com/ngorogiannis/cyclist/hgraph"
)

// Handle identifies one graph registered with a Registry. The zero Handle
// is never issued by CreateGraph, so it is safe to use as a "no handle"
// sentinel in calling code.
type Handle uuid.UUID

// CheckMode selects which closure.Engine strategy (or the automaton-based
// SLA reduction) Registry.Check runs.
type CheckMode int

const (
	Relational CheckMode = iota
	OrderReduced
	FWK
	SLA
)

// Registry is a thread-safe table of live HeightedGraph instances, addressed
// by Handle. Per SPEC_FULL.md §5, any one graph's own check methods are not
// safe for concurrent use, but the registry's bookkeeping (creating,
// destroying, looking up handles from multiple goroutines) is.
type Registry struct {
	mu     sync.Mutex
	graphs map[Handle]*hgraph.HeightedGraph
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{graphs: make(map[Handle]*hgraph.HeightedGraph)}
}

// CreateGraph registers a fresh hgraph.HeightedGraph with the given node
// capacity and returns its handle.
func (reg *Registry) CreateGraph(maxNodes int) Handle {
	h := Handle(uuid.New())
	reg.mu.Lock()
	reg.graphs[h] = hgraph.New(maxNodes)
	reg.mu.Unlock()
	log.Debug().Str("handle", uuid.UUID(h).String()).Int("max_nodes", maxNodes).Msg("ffi: graph created")
	return h
}

// Destroy unregisters h. Destroying an unknown handle is ErrUnknownHandle.
func (reg *Registry) Destroy(h Handle) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.graphs[h]; !ok {
		return ffiErrorf(ErrUnknownHandle, "Destroy(%s)", uuid.UUID(h))
	}
	delete(reg.graphs, h)
	return nil
}

func (reg *Registry) lookup(h Handle) (*hgraph.HeightedGraph, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	g, ok := reg.graphs[h]
	if !ok {
		return nil, ffiErrorf(ErrUnknownHandle, "%s", uuid.UUID(h))
	}
	return g, nil
}

func (reg *Registry) AddNode(h Handle, n int) error {
	g, err := reg.lookup(h)
	if err != nil {
		return err
	}
	return g.AddNode(n)
}

func (reg *Registry) AddHeight(h Handle, n, height int) error {
	g, err := reg.lookup(h)
	if err != nil {
		return err
	}
	return g.AddHeight(n, height)
}

func (reg *Registry) AddEdge(h Handle, src, dst int) error {
	g, err := reg.lookup(h)
	if err != nil {
		return err
	}
	return g.AddEdge(src, dst)
}

func (reg *Registry) AddStay(h Handle, src, srcH, dst, dstH int) error {
	g, err := reg.lookup(h)
	if err != nil {
		return err
	}
	return g.AddStay(src, srcH, dst, dstH)
}

func (reg *Registry) AddDecrease(h Handle, src, srcH, dst, dstH int) error {
	g, err := reg.lookup(h)
	if err != nil {
		return err
	}
	return g.AddDecrease(src, srcH, dst, dstH)
}

// Check runs the given strategy against h's graph and flags (ignored by
// SLA, which takes none).
func (reg *Registry) Check(h Handle, mode CheckMode, flags closure.Flags) (bool, error) {
	g, err := reg.lookup(h)
	if err != nil {
		return false, err
	}

	log.Debug().Str("handle", uuid.UUID(h).String()).Int("mode", int(mode)).Msg("ffi: check starting")

	switch mode {
	case Relational:
		return closure.NewEngine(g).RelationalCheck(flags)
	case OrderReduced:
		return closure.NewEngine(g).OrderReducedCheck(flags)
	case FWK:
		return closure.NewEngine(g).FWKCheck(flags)
	case SLA:
		return automaton.NewChecker(g, automaton.NewReferenceBackend()).SLACheck()
	default:
		return false, ffiErrorf(ErrUnknownCheckMode, "%d", mode)
	}
}
