// SPDX-License-Identifier: MIT

// Package render writes finite automata as Graphviz DOT or Mermaid diagrams.
//
// It only consumes the read-only surface of nfa.NFA and dfa.DFA (state ids,
// edges, start, goals) through a View; it never runs an external renderer.
//
//	v := render.NFAView("NFA", n)
//	err := render.DOT(w, v, render.WithStateLabel(names))
package render

import (
	"fmt"

	"github.com/katalvlaran/fsa/dfa"
	"github.com/katalvlaran/fsa/nfa"
)

// Edge is one labeled arrow of a diagram.
type Edge struct {
	From, To uint
	Label    string
}

// View is the renderer-neutral snapshot of an automaton.
type View struct {
	Name     string
	States   []uint // ascending
	Edges    []Edge
	Start    uint
	HasStart bool
	Goals    map[uint]bool
}

// NFAView snapshots n. Epsilon edges are labeled nfa.EpsilonToken. Dangling
// edge targets are added to States so every arrow has a node to land on.
func NFAView[T comparable](name string, n *nfa.NFA[T]) View {
	v := View{Name: name, Goals: make(map[uint]bool)}
	known := make(map[uint]bool)
	for _, id := range n.StateIDs() {
		v.States = append(v.States, uint(id))
		known[uint(id)] = true
	}
	for _, e := range n.Edges() {
		v.Edges = append(v.Edges, Edge{From: uint(e.From), To: uint(e.To), Label: e.Label.String()})
		if !known[uint(e.To)] {
			known[uint(e.To)] = true
			v.States = insertSorted(v.States, uint(e.To))
		}
	}
	if id, ok := n.StartID(); ok {
		v.Start, v.HasStart = uint(id), true
	}
	for _, id := range n.GoalIDs() {
		v.Goals[uint(id)] = true
	}

	return v
}

// DFAView snapshots d. Labels are rendered with fmt.Sprint.
func DFAView[T comparable](name string, d *dfa.DFA[T]) View {
	v := View{Name: name, Goals: make(map[uint]bool)}
	for _, id := range d.StateIDs() {
		v.States = append(v.States, uint(id))
	}
	for _, e := range d.Edges() {
		v.Edges = append(v.Edges, Edge{From: uint(e.From), To: uint(e.To), Label: fmt.Sprint(e.Label)})
	}
	if id, ok := d.StartID(); ok {
		v.Start, v.HasStart = uint(id), true
	}
	for _, id := range d.GoalIDs() {
		v.Goals[uint(id)] = true
	}

	return v
}

func insertSorted(ids []uint, id uint) []uint {
	i := 0
	for i < len(ids) && ids[i] < id {
		i++
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id

	return ids
}
