// SPDX-License-Identifier: MIT

package subset

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/fsa/nfa"
)

// StateSet is a set of NFA state ids kept in canonical form: ascending and
// without duplicates. Canonical form makes slice equality set equality.
//
// The zero StateSet is the empty set.
type StateSet []nfa.StateID

// NewStateSet builds a canonical set from ids in any order, dropping
// duplicates.
func NewStateSet(ids ...nfa.StateID) StateSet {
	s := slices.Clone(ids)
	slices.Sort(s)

	return StateSet(slices.Compact(s))
}

// Len returns the number of members.
func (s StateSet) Len() int { return len(s) }

// Contains reports whether id is a member.
// Complexity: O(log n)
func (s StateSet) Contains(id nfa.StateID) bool {
	_, found := slices.BinarySearch(s, id)

	return found
}

// Equal reports set equality.
func (s StateSet) Equal(o StateSet) bool { return slices.Equal(s, o) }

// IDs returns a copy of the members in ascending order.
func (s StateSet) IDs() []nfa.StateID { return slices.Clone(s) }

// Key returns a string that is equal for two sets iff the sets are equal.
// It is used to look DFA states up by the set they stand for.
func (s StateSet) Key() string {
	var b strings.Builder
	for i, id := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}

	return b.String()
}

// String renders the set as {a,b,c}.
func (s StateSet) String() string { return "{" + s.Key() + "}" }

// insert adds id, keeping canonical form. It reports whether id was new.
func (s *StateSet) insert(id nfa.StateID) bool {
	pos, found := slices.BinarySearch(*s, id)
	if found {
		return false
	}
	*s = slices.Insert(*s, pos, id)

	return true
}
