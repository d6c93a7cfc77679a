// SPDX-License-Identifier: MIT

// Package subset converts an nfa.NFA into an equivalent dfa.DFA using the
// subset (powerset) construction.
//
// Every DFA state stands for a set of NFA states. Construction starts from
// the epsilon-closure of the NFA start state and, for each set S taken off a
// FIFO worklist and each label a leaving S, computes
//
//	T = Closure(Move(S, a))
//
// T is looked up by value: a structurally equal set already seen reuses its
// DFA state, anything else becomes a new DFA state and joins the worklist.
// Once the worklist drains, every DFA state whose set holds an NFA goal is
// marked as a goal.
//
// Building blocks (exported for tests and tooling):
//
//	Closure(n, S)  – smallest superset of S closed under epsilon edges
//	Move(n, S, a)  – states reachable from S over one edge labeled a
//	Alphabet(n, S) – distinct non-epsilon labels leaving S, first-seen order
//
// Options:
//
//	WithLogger(l)      debug records per DFA state, summary on completion
//	WithMaxStates(n)   abort with ErrStateLimit beyond n DFA states (0 = no limit)
//	WithOnState(fn)    hook called when a DFA state is created
//
// Errors:
//
//	ErrGraphNil         nil NFA
//	ErrNoStartState     NFA has no start state; no DFA is produced
//	ErrStateLimit       WithMaxStates exceeded
//	ErrOptionViolation  invalid option value
//
// Complexity:
//
// At most 2^V DFA states are reachable for an NFA with V states; each is
// expanded once, costing O(V·E) for its closure and moves. Real inputs reach
// far fewer sets.
package subset
