// SPDX-License-Identifier: MIT

package nfa

import "fmt"

// EpsilonToken is the rendered form of an epsilon label.
const EpsilonToken = "<epsilon>"

// StateID names a state within one automaton. IDs are not meaningful across
// automata.
type StateID uint

// Label is an NFA edge label: either a concrete alphabet value or epsilon.
//
// The zero Label is not epsilon; use Epsilon or Value to build one. Two labels
// are equal (==) iff both are epsilon, or both wrap equal values.
type Label[T comparable] struct {
	value   T
	epsilon bool
}

// Value returns a label carrying the alphabet element v.
func Value[T comparable](v T) Label[T] {
	return Label[T]{value: v}
}

// Epsilon returns the epsilon label for alphabet T.
func Epsilon[T comparable]() Label[T] {
	return Label[T]{epsilon: true}
}

// IsEpsilon reports whether l is the epsilon marker.
func (l Label[T]) IsEpsilon() bool { return l.epsilon }

// Value returns the wrapped alphabet element. ok is false for epsilon.
func (l Label[T]) Value() (v T, ok bool) {
	if l.epsilon {
		return v, false
	}

	return l.value, true
}

// String renders the label for humans: EpsilonToken for epsilon, fmt.Sprint of
// the value otherwise.
func (l Label[T]) String() string {
	if l.epsilon {
		return EpsilonToken
	}

	return fmt.Sprint(l.value)
}

// Transition groups every target reachable from one state over one label.
// Targets is ascending and free of duplicates.
type Transition[T comparable] struct {
	Label   Label[T]
	Targets []StateID
}

// Edge is a single (from, label, to) triple, used by renderers that walk the
// graph edge by edge.
type Edge[T comparable] struct {
	From  StateID
	Label Label[T]
	To    StateID
}

// State is an NFA state: its id and its outgoing transitions, one entry per
// distinct label in first-linked order.
type State[T comparable] struct {
	id    StateID
	edges []Transition[T]
}

// NFA is a nondeterministic finite automaton over alphabet T.
//
// states owns every State; start is meaningful only when hasStart is set.
// Every id in goals, and start when set, names an existing state.
type NFA[T comparable] struct {
	states   map[StateID]*State[T]
	start    StateID
	hasStart bool
	goals    map[StateID]struct{}
}

// New creates an empty NFA with no start state and no goals.
// Complexity: O(1)
func New[T comparable]() *NFA[T] {
	return &NFA[T]{
		states: make(map[StateID]*State[T]),
		goals:  make(map[StateID]struct{}),
	}
}
