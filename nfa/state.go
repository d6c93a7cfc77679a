// SPDX-License-Identifier: MIT

package nfa

import "slices"

// ID returns the identifier of s.
func (s *State[T]) ID() StateID { return s.id }

// Transitions returns a copy of the outgoing transitions of s, in the order
// their labels were first linked.
// Complexity: O(E) where E is the number of (label, target) pairs.
func (s *State[T]) Transitions() []Transition[T] {
	out := make([]Transition[T], len(s.edges))
	for i, tr := range s.edges {
		out[i] = Transition[T]{Label: tr.Label, Targets: slices.Clone(tr.Targets)}
	}

	return out
}

// Targets returns the ascending set of states reachable from s over l, or nil
// when s has no edge labeled l.
func (s *State[T]) Targets(l Label[T]) []StateID {
	if i := s.find(l); i >= 0 {
		return slices.Clone(s.edges[i].Targets)
	}

	return nil
}

// find returns the index of the transition labeled l, or -1.
func (s *State[T]) find(l Label[T]) int {
	for i := range s.edges {
		if s.edges[i].Label == l {
			return i
		}
	}

	return -1
}

// addEdge unions to into the target set of l, creating the label entry on
// first use. Labels stay pairwise distinct.
func (s *State[T]) addEdge(l Label[T], to StateID) {
	i := s.find(l)
	if i < 0 {
		s.edges = append(s.edges, Transition[T]{Label: l, Targets: []StateID{to}})
		return
	}

	targets := s.edges[i].Targets
	pos, found := slices.BinarySearch(targets, to)
	if found {
		return
	}
	s.edges[i].Targets = slices.Insert(targets, pos, to)
}
