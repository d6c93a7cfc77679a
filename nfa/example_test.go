// SPDX-License-Identifier: MIT

package nfa_test

import (
	"fmt"

	"github.com/katalvlaran/fsa/nfa"
)

// ExampleNFA_Edges builds the two-branch automaton for "m|c" and walks its edges.
func ExampleNFA_Edges() {
	n := nfa.New[string]()
	s0 := n.AddState().ID()
	s1 := n.AddState().ID()
	s2 := n.AddState().ID()
	s3 := n.AddState().ID()

	n.Link(s0, nfa.Value("m"), s3)
	n.Link(s0, nfa.Epsilon[string](), s1)
	n.Link(s1, nfa.Value("c"), s2)
	n.Link(s2, nfa.Epsilon[string](), s3)
	n.SetStart(s0)
	n.AddGoal(s3)

	for _, e := range n.Edges() {
		fmt.Printf("%d -%s-> %d\n", e.From, e.Label, e.To)
	}
	fmt.Println("goals:", n.GoalIDs())
	// Output:
	// 0 -m-> 3
	// 0 -<epsilon>-> 1
	// 1 -c-> 2
	// 2 -<epsilon>-> 3
	// goals: [3]
}
