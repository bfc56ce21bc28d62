package automaton

// StateID identifies a state within one Automaton. IDs are local to the
// Automaton that created them via an AutomatonBuilder; passing a StateID
// from one Automaton into another's builder is a contract violation the
// backend is not required to detect.
type StateID int

// cube is a partial assignment over registered proposition indices: a
// conjunction of literals. A proposition absent from the map is a "don't
// care" for this cube. The empty cube matches every letter.
type cube map[int]bool

// matches reports whether the concrete letter (a total assignment produced
// by Minterm when the alphabet-in-use was enumerated) satisfies every
// literal this cube asserts.
func (c cube) matches(letter cube) bool {
	for prop, want := range c {
		if got, ok := letter[prop]; !ok || got != want {
			return false
		}
	}
	return true
}

// Label is a Boolean combination of propositions, represented in disjunctive
// normal form as a set of cubes (or the distinguished "all" sentinel for the
// constant true, which would otherwise require enumerating every cube over
// every registered proposition). False is the empty, non-all label.
type Label struct {
	all   bool
	cubes []cube
}

func (l Label) isFalse() bool { return !l.all && len(l.cubes) == 0 }

// matches reports whether the concrete letter satisfies this label.
func (l Label) matches(letter cube) bool {
	if l.all {
		return true
	}
	for _, c := range l.cubes {
		if c.matches(letter) {
			return true
		}
	}
	return false
}

// edge is one transition of an Automaton.
type edge struct {
	src, dst  StateID
	label     Label
	accepting bool
}

// Automaton is an explicit state/edge recording of one Büchi automaton, as
// produced by an AutomatonBuilder. Its acceptance condition is the standard
// Büchi condition: an infinite run accepts iff it traverses an `accepting`
// edge infinitely often.
type Automaton struct {
	numStates int
	init      StateID
	out       map[StateID][]edge
}

// NumStates returns the number of states, numbered [0, NumStates()).
func (a *Automaton) NumStates() int { return a.numStates }

// InitState returns the designated initial state.
func (a *Automaton) InitState() StateID { return a.init }

// outEdges returns the outgoing edges of s.
func (a *Automaton) outEdges(s StateID) []edge { return a.out[s] }
