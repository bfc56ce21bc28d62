package automaton

// AutomatonBackend is the capability the core checker consumes to build and
// compare Büchi automata. It stands in for an external BDD/ω-automaton
// library: any implementation satisfying this contract can back Checker.
// ReferenceBackend is the only implementation this module ships, since no
// such external library is available in its dependency closure.
type AutomatonBackend interface {
	// RegisterProposition allocates a fresh atomic proposition and returns
	// its index, stable for the lifetime of the backend.
	RegisterProposition(name string) int
	// Minterm returns the Label asserting exactly the literals in bits
	// (proposition index -> required truth value) and nothing else.
	Minterm(bits map[int]bool) Label
	Not(l Label) Label
	And(ls ...Label) Label
	Or(ls ...Label) Label
	True() Label
	False() Label
	// NewAutomaton starts building a fresh Automaton against this backend.
	NewAutomaton() *AutomatonBuilder
	// Contains decides L(b) subseteq L(a). Both automata must have been
	// built by this same backend instance; ReferenceBackend does not check
	// this and returns ErrBackendContract only for a nil automaton.
	Contains(a, b *Automaton) (bool, error)
}

// AutomatonBuilder accumulates states and edges for one Automaton under
// construction. Obtain one via AutomatonBackend.NewAutomaton.
type AutomatonBuilder struct {
	backend *ReferenceBackend
	a       *Automaton
}

// NewStates allocates n fresh states and returns their ids, in order,
// growing the automaton's state count.
func (b *AutomatonBuilder) NewStates(n int) []StateID {
	ids := make([]StateID, n)
	for i := 0; i < n; i++ {
		ids[i] = StateID(b.a.numStates)
		b.a.numStates++
	}
	return ids
}

// SetInitState designates s as the automaton's initial state.
func (b *AutomatonBuilder) SetInitState(s StateID) {
	b.a.init = s
}

// NewEdge records a transition src -> dst labeled label, in or out of the
// Büchi acceptance set per accepting.
func (b *AutomatonBuilder) NewEdge(src, dst StateID, label Label, accepting bool) {
	b.a.out[src] = append(b.a.out[src], edge{src: src, dst: dst, label: label, accepting: accepting})
}

// Build finalizes and returns the constructed Automaton.
func (b *AutomatonBuilder) Build() *Automaton {
	return b.a
}

// ReferenceBackend is an explicit, BDD-free AutomatonBackend: labels are
// lists of minterm cubes rather than nodes in a shared decision diagram, and
// Contains decides inclusion via an on-the-fly breakpoint product
// construction (see product.go) instead of an optimized complementation
// library. This is this module's production backend, not a test fake — no
// external ω-automaton library is available to back a faster one.
type ReferenceBackend struct {
	propNames []string
	alphabet  []cube // every concrete letter ever produced by Minterm, in creation order, deduplicated
}

// NewReferenceBackend returns an empty ReferenceBackend.
func NewReferenceBackend() *ReferenceBackend {
	return &ReferenceBackend{}
}

func (b *ReferenceBackend) RegisterProposition(name string) int {
	b.propNames = append(b.propNames, name)
	return len(b.propNames) - 1
}

func (b *ReferenceBackend) Minterm(bits map[int]bool) Label {
	c := make(cube, len(bits))
	for k, v := range bits {
		c[k] = v
	}
	b.recordAlphabetSymbol(c)
	return Label{cubes: []cube{c}}
}

// recordAlphabetSymbol adds c to the tracked alphabet-in-use if it is not
// already present (by value). The alphabet is exactly the set of concrete
// letters the checker ever asked for, per SPEC_FULL.md's restriction of the
// minterm encoding to "the label alphabet actually in use" rather than all
// 2^k combinations over registered propositions.
func (b *ReferenceBackend) recordAlphabetSymbol(c cube) {
	for _, existing := range b.alphabet {
		if cubeEqual(existing, c) {
			return
		}
	}
	b.alphabet = append(b.alphabet, c)
}

func cubeEqual(a, c cube) bool {
	if len(a) != len(c) {
		return false
	}
	for k, v := range a {
		if cv, ok := c[k]; !ok || cv != v {
			return false
		}
	}
	return true
}

func (b *ReferenceBackend) Not(l Label) Label {
	if l.all {
		return Label{}
	}
	if l.isFalse() {
		return Label{all: true}
	}
	// De Morgan: complement of an OR of cubes is the AND of the complement
	// of each cube; the complement of a cube (a conjunction of literals) is
	// the OR of the negated literals. Distribute the ANDs across the ORs to
	// arrive back at a flat disjunction of cubes.
	result := Label{all: true}
	for _, c := range l.cubes {
		var negated []cube
		for prop, val := range c {
			negated = append(negated, cube{prop: !val})
		}
		result = b.And(result, Label{cubes: negated})
	}
	return result
}

func (b *ReferenceBackend) And(ls ...Label) Label {
	acc := Label{all: true}
	for _, l := range ls {
		acc = andTwo(acc, l)
	}
	return acc
}

func andTwo(x, y Label) Label {
	if x.all {
		return y
	}
	if y.all {
		return x
	}
	var out []cube
	for _, cx := range x.cubes {
		for _, cy := range y.cubes {
			merged, ok := mergeCubes(cx, cy)
			if ok {
				out = append(out, merged)
			}
		}
	}
	return Label{cubes: out}
}

func mergeCubes(a, c cube) (cube, bool) {
	out := make(cube, len(a)+len(c))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range c {
		if existing, ok := out[k]; ok && existing != v {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}

func (b *ReferenceBackend) Or(ls ...Label) Label {
	var out []cube
	for _, l := range ls {
		if l.all {
			return Label{all: true}
		}
		out = append(out, l.cubes...)
	}
	return Label{cubes: out}
}

func (b *ReferenceBackend) True() Label  { return Label{all: true} }
func (b *ReferenceBackend) False() Label { return Label{} }

func (b *ReferenceBackend) NewAutomaton() *AutomatonBuilder {
	return &AutomatonBuilder{
		backend: b,
		a:       &Automaton{out: make(map[StateID][]edge)},
	}
}
