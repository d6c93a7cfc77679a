// SPDX-License-Identifier: MIT

package subset

import "github.com/katalvlaran/fsa/nfa"

// Closure returns the epsilon-closure of states: every state reachable from a
// member by zero or more epsilon edges.
//
// The walk uses an explicit stack and checks membership before expanding, so
// epsilon cycles terminate. Members that do not exist in n (dangling link
// targets) stay in the result but contribute no edges.
// Complexity: O(V + E) over the epsilon subgraph, O(log V) per insertion.
func Closure[T comparable](n *nfa.NFA[T], states StateSet) StateSet {
	eps := nfa.Epsilon[T]()
	out := make(StateSet, 0, len(states))
	stack := make([]nfa.StateID, 0, len(states))

	for _, id := range states {
		if out.insert(id) {
			stack = append(stack, id)
		}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s, ok := n.State(id)
		if !ok {
			continue
		}
		for _, to := range s.Targets(eps) {
			if out.insert(to) {
				stack = append(stack, to)
			}
		}
	}

	return out
}

// Move returns the states reachable from any member of states over a single
// edge labeled a. Epsilon edges are not followed.
func Move[T comparable](n *nfa.NFA[T], states StateSet, a T) StateSet {
	label := nfa.Value(a)
	var out StateSet
	for _, id := range states {
		s, ok := n.State(id)
		if !ok {
			continue
		}
		for _, to := range s.Targets(label) {
			out.insert(to)
		}
	}

	return out
}

// Alphabet returns the distinct non-epsilon labels on edges leaving members of
// states. Order is first-seen, walking members ascending and each state's
// labels in first-linked order, so the result is reproducible.
func Alphabet[T comparable](n *nfa.NFA[T], states StateSet) []T {
	var out []T
	seen := make(map[T]struct{})
	for _, id := range states {
		s, ok := n.State(id)
		if !ok {
			continue
		}
		for _, tr := range s.Transitions() {
			v, ok := tr.Label.Value()
			if !ok {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
