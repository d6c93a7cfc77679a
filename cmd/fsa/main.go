// SPDX-License-Identifier: MIT

// Command fsa loads automaton descriptions, determinizes them and prints
// Graphviz or Mermaid diagrams.
//
//	fsa render nfa.yaml --format dot | dot -Tsvg -o nfa.svg
//	fsa determinize nfa.yaml --names > dfa.dot
//	fsa closure nfa.yaml S0
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
