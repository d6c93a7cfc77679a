// SPDX-License-Identifier: MIT

// Package nfa provides the nondeterministic finite automaton graph consumed by
// subset construction.
//
// An NFA owns its states (keyed by StateID), an optional start state and a set
// of goal states. Edges are labeled either with a concrete alphabet value or
// with the epsilon marker, and one label may lead to a set of targets:
//
//	S0 --ε--> S10 --m--> S17 --ε--> S3
//	   --ε--> S20 --c--> S28 --ε--> S3
//
// The alphabet type T is opaque: the package only ever compares labels with ==.
//
// Core Methods:
//
//	New[T]() *NFA[T]
//	AddState() *State[T]                 // lowest free id, probing upward from Len()
//	Link(from StateID, l Label[T], to StateID)
//	SetStart(id StateID)
//	AddGoal(id StateID)
//
//	State(id) (*State[T], bool)
//	Start() (*State[T], bool)
//	Goals() []*State[T]                  // ascending id
//	States() []*State[T]                 // ascending id
//	Edges() []Edge[T]                    // flattened (from, label, to) triples
//
// Leniency:
//
// Mutations never fail. Linking from a missing state, or naming a missing
// state as start or goal, is a silent no-op. The target of Link is stored
// as-is and is only resolved when the graph is walked; a dangling target
// has no outgoing edges and can never be a goal.
//
// Concurrency:
//
// An NFA is not safe for concurrent mutation. Build it from one goroutine,
// then share it read-only.
package nfa
