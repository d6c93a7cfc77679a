// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: NFA construction (AddState, Link, SetStart, AddGoal) and read access.
//
// Determinism:
//   - States(), StateIDs(), Goals(), GoalIDs() and Edges() are ordered by
//     ascending state id.

package nfa

import (
	"maps"
	"slices"
)

// AddState allocates the lowest unused id at or above Len(), inserts an empty
// state under it and returns the new state.
//
// Probing upward from the current size keeps ids dense even if the id space
// ever has holes.
// Complexity: O(1) amortized when ids are contiguous.
func (n *NFA[T]) AddState() *State[T] {
	id := StateID(len(n.states))
	for {
		if _, taken := n.states[id]; !taken {
			break
		}
		id++
	}

	s := &State[T]{id: id}
	n.states[id] = s

	return s
}

// Link adds an edge from -l-> to. If from already has an edge labeled l, to
// joins that label's target set.
//
// A missing from is a silent no-op. to is not checked.
func (n *NFA[T]) Link(from StateID, l Label[T], to StateID) {
	s, ok := n.states[from]
	if !ok {
		return
	}
	s.addEdge(l, to)
}

// SetStart marks id as the start state. No-op if id does not exist.
func (n *NFA[T]) SetStart(id StateID) {
	if _, ok := n.states[id]; !ok {
		return
	}
	n.start, n.hasStart = id, true
}

// AddGoal marks id as a goal state. No-op if id does not exist.
func (n *NFA[T]) AddGoal(id StateID) {
	if _, ok := n.states[id]; !ok {
		return
	}
	n.goals[id] = struct{}{}
}

// Len returns the number of states.
func (n *NFA[T]) Len() int { return len(n.states) }

// State returns the state named id.
func (n *NFA[T]) State(id StateID) (*State[T], bool) {
	s, ok := n.states[id]

	return s, ok
}

// StartID returns the start state id, if one was set.
func (n *NFA[T]) StartID() (StateID, bool) { return n.start, n.hasStart }

// Start returns the start state, if one was set.
func (n *NFA[T]) Start() (*State[T], bool) {
	if !n.hasStart {
		return nil, false
	}

	return n.State(n.start)
}

// IsGoal reports whether id is a goal state.
func (n *NFA[T]) IsGoal(id StateID) bool {
	_, ok := n.goals[id]

	return ok
}

// GoalIDs returns the goal state ids in ascending order.
func (n *NFA[T]) GoalIDs() []StateID {
	return slices.Sorted(maps.Keys(n.goals))
}

// Goals returns the goal states in ascending id order.
func (n *NFA[T]) Goals() []*State[T] {
	ids := n.GoalIDs()
	out := make([]*State[T], 0, len(ids))
	for _, id := range ids {
		out = append(out, n.states[id])
	}

	return out
}

// StateIDs returns every state id in ascending order.
// Complexity: O(V log V)
func (n *NFA[T]) StateIDs() []StateID {
	return slices.Sorted(maps.Keys(n.states))
}

// States returns every state in ascending id order.
func (n *NFA[T]) States() []*State[T] {
	ids := n.StateIDs()
	out := make([]*State[T], len(ids))
	for i, id := range ids {
		out[i] = n.states[id]
	}

	return out
}

// Edges flattens the graph into (from, label, to) triples: states ascending,
// labels in first-linked order, targets ascending. Dangling targets are
// reported as stored.
// Complexity: O(V log V + E)
func (n *NFA[T]) Edges() []Edge[T] {
	var out []Edge[T]
	for _, s := range n.States() {
		for _, tr := range s.edges {
			for _, to := range tr.Targets {
				out = append(out, Edge[T]{From: s.id, Label: tr.Label, To: to})
			}
		}
	}

	return out
}
