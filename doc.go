// Package fsa models finite automata over an arbitrary comparable alphabet
// and converts nondeterministic automata, epsilon edges included, into
// deterministic ones by subset construction.
//
// Packages:
//
//	nfa/      - NFA graph: states, epsilon/value labels, start and goals
//	dfa/      - DFA graph: one target per label, last write wins
//	subset/   - epsilon-closure, move, alphabet and the powerset construction
//	render/   - Graphviz DOT and Mermaid export of either automaton
//	builder/  - NFAs from YAML/JSON descriptions or literal word lists
//	cmd/fsa   - command line front-end tying the above together
//
// Quick example:
//
//	n := nfa.New[rune]()
//	s0, s1 := n.AddState().ID(), n.AddState().ID()
//	n.Link(s0, nfa.Value('a'), s1)
//	n.SetStart(s0)
//	n.AddGoal(s1)
//	d, err := subset.Determinize(n)
//
// Minimization and matching against input are out of scope; the DFA is
// handed to whatever engine consumes it.
package fsa
