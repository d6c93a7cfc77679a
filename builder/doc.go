// SPDX-License-Identifier: MIT

// Package builder produces nfa.NFA[string] automata with named states. It is
// the front-end side of the module: the core only consumes what it builds.
//
// Two sources are supported:
//
//   - Descriptions: YAML or JSON files listing states, edges, start and goals
//     (Load, Parse, FromDescription, LoadFixture).
//   - Literal words: Words("match", "criminel") builds an NFA accepting
//     exactly those words, one epsilon branch per word.
//
// Constructors compose through Build:
//
//	f, err := builder.Build(builder.Words("meet"), builder.Words("mat"))
//	d, err := subset.Determinize(f.NFA)
//
// Unlike the nfa package, which silently ignores references to missing
// states, the builder rejects them with ErrUnknownState: a typo in a file is
// reported instead of producing a smaller automaton.
package builder
