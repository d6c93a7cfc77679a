// SPDX-License-Identifier: MIT
// Package: fsa/builder
//
// impl_words.go - NFA for a finite list of literal words.
//
// Shape (one epsilon branch per word, shared start and accept):
//
//	start --ε--> w0::0 --m--> w0::1 --a--> ... --ε--> accept
//	      --ε--> w1::0 --c--> w1::1 --r--> ... --ε--> accept
//
// Contract:
//   - Labels are single runes rendered as strings.
//   - start/accept are reused when a previous constructor declared them.
//   - Branch states are namespaced "w<index>::<pos>", offset by the number of
//     branches already present so repeated Words calls never collide.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fsa/nfa"
)

const (
	nsSep      = "::"
	startName  = "start"
	acceptName = "accept"
)

// Words returns a Constructor adding an NFA that accepts exactly the given
// words. The shared start becomes the NFA start and accept becomes a goal.
//
// Errors:
//   - ErrEmptyWord if no words are given or any word is "".
func Words(words ...string) Constructor {
	return func(f *Fixture) error {
		if len(words) == 0 {
			return fmt.Errorf("Words: %w: no words", ErrEmptyWord)
		}
		for i, w := range words {
			if w == "" {
				return fmt.Errorf("Words: %w at index %d", ErrEmptyWord, i)
			}
		}

		start := f.ensure(startName)
		accept := f.ensure(acceptName)
		eps := nfa.Epsilon[string]()

		base := f.branches
		for i, w := range words {
			branch := base + i
			prev := f.ensure(fmt.Sprintf("w%d%s0", branch, nsSep))
			f.NFA.Link(start, eps, prev)

			pos := 1
			for _, r := range w {
				next := f.ensure(fmt.Sprintf("w%d%s%d", branch, nsSep, pos))
				f.NFA.Link(prev, nfa.Value(string(r)), next)
				prev = next
				pos++
			}
			f.NFA.Link(prev, eps, accept)
		}
		f.branches += len(words)

		f.NFA.SetStart(start)
		f.NFA.AddGoal(accept)

		return nil
	}
}
