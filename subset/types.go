// SPDX-License-Identifier: MIT

package subset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/fsa/dfa"
)

// Sentinel errors for subset construction.
var (
	// ErrGraphNil is returned when a nil NFA is passed.
	ErrGraphNil = errors.New("subset: nfa is nil")

	// ErrNoStartState is returned when the NFA has no start state. There is no
	// meaningful DFA to return in that case.
	ErrNoStartState = errors.New("subset: nfa has no start state")

	// ErrStateLimit is returned when construction would exceed WithMaxStates.
	ErrStateLimit = errors.New("subset: dfa state limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("subset: invalid option supplied")
)

// Option configures a construction run.
type Option func(*Options)

// Options holds the resolved construction parameters.
type Options struct {
	// Logger receives debug records for each DFA state and a summary.
	Logger *slog.Logger

	// MaxStates, if > 0, caps the number of DFA states.
	MaxStates int

	// OnState is called once per DFA state, right after it is allocated.
	OnState func(id dfa.StateID, set StateSet)

	err error
}

// DefaultOptions returns Options with a discarding logger, no state limit and
// a no-op OnState hook.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnState: func(dfa.StateID, StateSet) {},
	}
}

// WithLogger routes construction diagnostics to l. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxStates aborts construction with ErrStateLimit once more than limit
// DFA states would be created.
//
//	limit > 0:  cap at limit
//	limit == 0: no cap
//	limit < 0:  ErrOptionViolation
func WithMaxStates(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxStates = limit
	}
}

// WithOnState registers fn to observe every DFA state as it is created,
// together with the NFA state-set it stands for. nil is ignored.
func WithOnState(fn func(id dfa.StateID, set StateSet)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnState = fn
		}
	}
}

// Result is the outcome of Construct.
//
// Sets maps every DFA state to the NFA state-set it was built from.
type Result[T comparable] struct {
	DFA  *dfa.DFA[T]
	Sets map[dfa.StateID]StateSet
}
