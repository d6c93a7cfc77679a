// SPDX-License-Identifier: MIT

package dfa

import (
	"maps"
	"slices"
)

// ID returns the identifier of s.
func (s *State[T]) ID() StateID { return s.id }

// Transitions returns a copy of the outgoing edges of s.
func (s *State[T]) Transitions() []Transition[T] {
	return slices.Clone(s.edges)
}

// Target returns the state reached from s over label.
func (s *State[T]) Target(label T) (StateID, bool) {
	for _, tr := range s.edges {
		if tr.Label == label {
			return tr.Target, true
		}
	}

	return 0, false
}

// setEdge points label at to, replacing any previous target.
func (s *State[T]) setEdge(label T, to StateID) {
	for i := range s.edges {
		if s.edges[i].Label == label {
			s.edges[i].Target = to
			return
		}
	}
	s.edges = append(s.edges, Transition[T]{Label: label, Target: to})
}

// AddState allocates the lowest unused id at or above Len() and returns the
// new, edge-less state.
func (d *DFA[T]) AddState() *State[T] {
	id := StateID(len(d.states))
	for {
		if _, taken := d.states[id]; !taken {
			break
		}
		id++
	}

	s := &State[T]{id: id}
	d.states[id] = s

	return s
}

// Link sets the edge from -label-> to, overwriting an existing target for
// label. A missing from is a silent no-op.
func (d *DFA[T]) Link(from StateID, label T, to StateID) {
	if s, ok := d.states[from]; ok {
		s.setEdge(label, to)
	}
}

// SetStart marks id as the start state. No-op if id does not exist.
func (d *DFA[T]) SetStart(id StateID) {
	if _, ok := d.states[id]; ok {
		d.start, d.hasStart = id, true
	}
}

// AddGoal marks id as a goal state. No-op if id does not exist.
func (d *DFA[T]) AddGoal(id StateID) {
	if _, ok := d.states[id]; ok {
		d.goals[id] = struct{}{}
	}
}

// Len returns the number of states.
func (d *DFA[T]) Len() int { return len(d.states) }

// State returns the state named id.
func (d *DFA[T]) State(id StateID) (*State[T], bool) {
	s, ok := d.states[id]

	return s, ok
}

// StartID returns the start state id, if set.
func (d *DFA[T]) StartID() (StateID, bool) { return d.start, d.hasStart }

// Start returns the start state, if set.
func (d *DFA[T]) Start() (*State[T], bool) {
	if !d.hasStart {
		return nil, false
	}

	return d.State(d.start)
}

// IsGoal reports whether id is a goal state.
func (d *DFA[T]) IsGoal(id StateID) bool {
	_, ok := d.goals[id]

	return ok
}

// GoalIDs returns goal ids in ascending order.
func (d *DFA[T]) GoalIDs() []StateID {
	return slices.Sorted(maps.Keys(d.goals))
}

// Goals returns goal states in ascending id order.
func (d *DFA[T]) Goals() []*State[T] {
	ids := d.GoalIDs()
	out := make([]*State[T], len(ids))
	for i, id := range ids {
		out[i] = d.states[id]
	}

	return out
}

// StateIDs returns every state id in ascending order.
func (d *DFA[T]) StateIDs() []StateID {
	return slices.Sorted(maps.Keys(d.states))
}

// States returns every state in ascending id order.
func (d *DFA[T]) States() []*State[T] {
	ids := d.StateIDs()
	out := make([]*State[T], len(ids))
	for i, id := range ids {
		out[i] = d.states[id]
	}

	return out
}

// Edges flattens the graph into (from, label, to) triples, states ascending and
// labels in first-linked order.
func (d *DFA[T]) Edges() []Edge[T] {
	var out []Edge[T]
	for _, s := range d.States() {
		for _, tr := range s.edges {
			out = append(out, Edge[T]{From: s.id, Label: tr.Label, To: tr.Target})
		}
	}

	return out
}
