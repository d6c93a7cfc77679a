// SPDX-License-Identifier: MIT

// Package dfa provides the deterministic finite automaton graph produced by
// subset construction.
//
// A DFA has the same shape as an nfa.NFA, but each state has at most one
// target per label and there is no epsilon label. Re-linking an existing
// label overwrites its target (last write wins).
//
// The graph is a passive data sink; it has no determinization logic of its
// own. Mutations are lenient in the same way as nfa: missing sources, starts
// and goals are silent no-ops.
package dfa

// StateID names a state within one DFA. DFA ids form their own numbering
// space, independent of the NFA the DFA was built from.
type StateID uint

// Transition is a single deterministic edge.
type Transition[T comparable] struct {
	Label  T
	Target StateID
}

// Edge is a (from, label, to) triple for renderers.
type Edge[T comparable] struct {
	From  StateID
	Label T
	To    StateID
}

// State is a DFA state with its outgoing edges in first-linked label order.
type State[T comparable] struct {
	id    StateID
	edges []Transition[T]
}

// DFA is a deterministic finite automaton over alphabet T.
type DFA[T comparable] struct {
	states   map[StateID]*State[T]
	start    StateID
	hasStart bool
	goals    map[StateID]struct{}
}

// New creates an empty DFA.
func New[T comparable]() *DFA[T] {
	return &DFA[T]{
		states: make(map[StateID]*State[T]),
		goals:  make(map[StateID]struct{}),
	}
}
