// SPDX-License-Identifier: MIT

package subset

import (
	"fmt"

	"github.com/katalvlaran/fsa/dfa"
	"github.com/katalvlaran/fsa/nfa"
)

// record pairs a DFA state with the NFA state-set it stands for.
type record struct {
	id  dfa.StateID
	set StateSet
}

// builder carries the state of one construction run.
type builder[T comparable] struct {
	nfa   *nfa.NFA[T]
	opts  Options
	out   *dfa.DFA[T]
	index map[string]dfa.StateID // StateSet.Key() → DFA state
	sets  map[dfa.StateID]StateSet
	queue []record
}

// Determinize builds a DFA accepting exactly the language of n.
//
// n is only read. The returned DFA shares no storage with it.
//
// Errors:
//   - ErrGraphNil if n is nil.
//   - ErrNoStartState if n has no start state.
//   - ErrStateLimit if WithMaxStates is exceeded.
//   - ErrOptionViolation for invalid options.
func Determinize[T comparable](n *nfa.NFA[T], opts ...Option) (*dfa.DFA[T], error) {
	res, err := Construct(n, opts...)
	if err != nil {
		return nil, err
	}

	return res.DFA, nil
}

// MustDeterminize is Determinize for callers that have established a start
// state; it panics on any error.
func MustDeterminize[T comparable](n *nfa.NFA[T], opts ...Option) *dfa.DFA[T] {
	d, err := Determinize(n, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// Construct runs subset construction and returns the DFA together with the
// NFA state-set behind every DFA state.
//
// Implementation:
//   - Stage 1: Validate n, resolve options, require a start state.
//   - Stage 2: Seed the worklist with Closure({start}) as DFA start.
//   - Stage 3: Pop records FIFO; for each label in Alphabet(S) link to the
//     DFA state of Closure(Move(S, a)), creating it on first sight.
//   - Stage 4: Mark DFA goals where the set intersects the NFA goals.
func Construct[T comparable](n *nfa.NFA[T], opts ...Option) (*Result[T], error) {
	if n == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, ok := n.StartID()
	if !ok {
		return nil, ErrNoStartState
	}

	b := &builder[T]{
		nfa:   n,
		opts:  o,
		out:   dfa.New[T](),
		index: make(map[string]dfa.StateID),
		sets:  make(map[dfa.StateID]StateSet),
	}

	first, err := b.intern(Closure(n, NewStateSet(start)))
	if err != nil {
		return nil, err
	}
	b.out.SetStart(first)

	for len(b.queue) > 0 {
		rec := b.queue[0]
		b.queue = b.queue[1:]

		for _, a := range Alphabet(n, rec.set) {
			to, err := b.intern(Closure(n, Move(n, rec.set, a)))
			if err != nil {
				return nil, err
			}
			b.out.Link(rec.id, a, to)
		}
	}

	b.markGoals()
	o.Logger.Debug("subset construction done",
		"nfa_states", n.Len(),
		"dfa_states", b.out.Len(),
		"goals", len(b.out.GoalIDs()))

	return &Result[T]{DFA: b.out, Sets: b.sets}, nil
}

// intern returns the DFA state for set, allocating and enqueueing one if set
// has not been seen before.
func (b *builder[T]) intern(set StateSet) (dfa.StateID, error) {
	key := set.Key()
	if id, ok := b.index[key]; ok {
		return id, nil
	}
	if b.opts.MaxStates > 0 && b.out.Len() >= b.opts.MaxStates {
		return 0, fmt.Errorf("%w: limit %d reached at set %s", ErrStateLimit, b.opts.MaxStates, set)
	}

	id := b.out.AddState().ID()
	b.index[key] = id
	b.sets[id] = set
	b.queue = append(b.queue, record{id: id, set: set})

	b.opts.Logger.Debug("dfa state created", "dfa_state", id, "nfa_states", set.String())
	b.opts.OnState(id, set)

	return id, nil
}

// markGoals flags every DFA state whose set holds at least one NFA goal.
func (b *builder[T]) markGoals() {
	for _, id := range b.out.StateIDs() {
		for _, member := range b.sets[id] {
			if b.nfa.IsGoal(member) {
				b.out.AddGoal(id)
				break
			}
		}
	}
}
