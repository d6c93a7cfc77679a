// SPDX-License-Identifier: MIT
// Package: fsa/builder
//
// api.go - Fixture, Constructor and the Build orchestrator.
//
// Design contract:
//   - One orchestrator: Build(cons...). Creates the fixture, runs cons in order.
//   - Constructors validate their input and return sentinel errors; no panics.
//   - Determinism: the same constructors in the same order yield the same ids.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/fsa/nfa"
)

// Fixture is an NFA whose states carry human-readable names.
type Fixture struct {
	NFA *nfa.NFA[string]

	names    map[string]nfa.StateID
	ids      map[nfa.StateID]string
	branches int // word branches emitted so far
}

// Constructor applies one deterministic mutation to a Fixture.
type Constructor func(f *Fixture) error

// Build creates an empty Fixture and applies cons in order. The first error is
// wrapped with "Build: %w" and returned; no partial fixture is returned.
func Build(cons ...Constructor) (*Fixture, error) {
	f := newFixture()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return f, nil
}

func newFixture() *Fixture {
	return &Fixture{
		NFA:   nfa.New[string](),
		names: make(map[string]nfa.StateID),
		ids:   make(map[nfa.StateID]string),
	}
}

// Declare adds a new state called name.
//
// Errors:
//   - ErrEmptyStateName if name is "".
//   - ErrDuplicateState if name is already declared.
func (f *Fixture) Declare(name string) (nfa.StateID, error) {
	if name == "" {
		return 0, ErrEmptyStateName
	}
	if _, dup := f.names[name]; dup {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateState, name)
	}
	id := f.NFA.AddState().ID()
	f.names[name] = id
	f.ids[id] = name

	return id, nil
}

// ensure returns the state called name, declaring it on first use.
func (f *Fixture) ensure(name string) nfa.StateID {
	if id, ok := f.names[name]; ok {
		return id
	}
	id, _ := f.Declare(name)

	return id
}

// ID resolves a state name.
func (f *Fixture) ID(name string) (nfa.StateID, bool) {
	id, ok := f.names[name]

	return id, ok
}

// Name returns the name of id, or its decimal form for unnamed states.
func (f *Fixture) Name(id nfa.StateID) string {
	if name, ok := f.ids[id]; ok {
		return name
	}

	return strconv.FormatUint(uint64(id), 10)
}

// resolve looks a name up, failing with ErrUnknownState.
func (f *Fixture) resolve(name string) (nfa.StateID, error) {
	id, ok := f.names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
	}

	return id, nil
}
