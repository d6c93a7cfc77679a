// SPDX-License-Identifier: MIT

package builder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fsa/builder"
	"github.com/katalvlaran/fsa/dfa"
	"github.com/katalvlaran/fsa/nfa"
	"github.com/katalvlaran/fsa/subset"
)

// accepts runs word through d one rune at a time.
func accepts(d *dfa.DFA[string], word string) bool {
	id, ok := d.StartID()
	if !ok {
		return false
	}
	for _, r := range word {
		s, _ := d.State(id)
		if id, ok = s.Target(string(r)); !ok {
			return false
		}
	}

	return d.IsGoal(id)
}

func TestParse_YAML(t *testing.T) {
	src := []byte(`
name: tiny
start: a
goals: [b]
states: [a, b]
edges:
  - {from: a, label: "x", to: b}
  - {from: a, to: b}
`)
	d, err := builder.Parse(src, builder.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "tiny", d.Name)
	assert.Equal(t, []string{"a", "b"}, d.States)
	require.Len(t, d.Edges, 2)
	require.NotNil(t, d.Edges[0].Label)
	assert.Equal(t, "x", *d.Edges[0].Label)
	assert.Nil(t, d.Edges[1].Label)

	f, err := builder.Build(builder.FromDescription(d))
	require.NoError(t, err)

	a, ok := f.ID("a")
	require.True(t, ok)
	b, _ := f.ID("b")
	s, _ := f.NFA.State(a)
	assert.Equal(t, []nfa.StateID{b}, s.Targets(nfa.Value("x")))
	assert.Equal(t, []nfa.StateID{b}, s.Targets(nfa.Epsilon[string]()))
	assert.Equal(t, "b", f.Name(b))
	assert.Equal(t, "42", f.Name(42))
}

func TestParse_Errors(t *testing.T) {
	_, err := builder.Parse([]byte(`unknown: 1`), builder.FormatYAML)
	assert.Error(t, err)

	_, err = builder.Parse([]byte(`{"states": [1, 2]`), builder.FormatJSON)
	assert.Error(t, err)

	_, err = builder.Parse([]byte(`states: []`), "toml")
	assert.ErrorIs(t, err, builder.ErrUnsupportedFormat)

	d, err := builder.Parse(nil, builder.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, d.States)
}

func TestFromDescription_Errors(t *testing.T) {
	label := "x"
	cases := []struct {
		name string
		desc builder.Description
		want error
	}{
		{"empty name", builder.Description{States: []string{""}}, builder.ErrEmptyStateName},
		{"duplicate", builder.Description{States: []string{"a", "a"}}, builder.ErrDuplicateState},
		{"unknown from", builder.Description{States: []string{"a"}, Edges: []builder.EdgeSpec{{From: "z", To: "a"}}}, builder.ErrUnknownState},
		{"unknown to", builder.Description{States: []string{"a"}, Edges: []builder.EdgeSpec{{From: "a", Label: &label, To: "z"}}}, builder.ErrUnknownState},
		{"unknown start", builder.Description{States: []string{"a"}, Start: "z"}, builder.ErrUnknownState},
		{"unknown goal", builder.Description{States: []string{"a"}, Goals: []string{"z"}}, builder.ErrUnknownState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(builder.FromDescription(&tc.desc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build(nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestLoadFixture_JSON(t *testing.T) {
	f, err := builder.LoadFixture(filepath.Join("testdata", "m_or_c.json"))
	require.NoError(t, err)
	assert.Equal(t, 6, f.NFA.Len())

	s0, _ := f.ID("S0")
	s10, _ := f.ID("S10")
	s20, _ := f.ID("S20")
	got := subset.Closure(f.NFA, subset.NewStateSet(s0))
	assert.Equal(t, subset.NewStateSet(s0, s10, s20), got)

	d, err := subset.Determinize(f.NFA)
	require.NoError(t, err)
	assert.True(t, accepts(d, "m"))
	assert.True(t, accepts(d, "c"))
	assert.False(t, accepts(d, "mc"))
	assert.False(t, accepts(d, ""))
}

// TestLoadFixture_MeetCriminel determinizes the two-branch demo automaton.
func TestLoadFixture_MeetCriminel(t *testing.T) {
	f, err := builder.LoadFixture(filepath.Join("testdata", "meet_criminel.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 19, f.NFA.Len())

	d, err := subset.Determinize(f.NFA)
	require.NoError(t, err)

	for _, w := range []string{"criminel", "mecnt", "meechant", "metcriminel", "mecnont", "mechanohant"} {
		assert.True(t, accepts(d, w), "should accept %q", w)
	}
	for _, w := range []string{"", "m", "crimine", "meet", "mechan", "criminels"} {
		assert.False(t, accepts(d, w), "should reject %q", w)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := builder.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWords(t *testing.T) {
	f, err := builder.Build(builder.Words("match", "mat"), builder.Words("cat"))
	require.NoError(t, err)

	start, ok := f.ID("start")
	require.True(t, ok)
	id, _ := f.NFA.StartID()
	assert.Equal(t, start, id)

	accept, _ := f.ID("accept")
	assert.Equal(t, []nfa.StateID{accept}, f.NFA.GoalIDs())

	_, ok = f.ID("w2::3")
	assert.True(t, ok, "third branch should be namespaced w2")

	d := subset.MustDeterminize(f.NFA)
	for _, w := range []string{"match", "mat", "cat"} {
		assert.True(t, accepts(d, w), "should accept %q", w)
	}
	for _, w := range []string{"", "ma", "matc", "cats", "mach"} {
		assert.False(t, accepts(d, w), "should reject %q", w)
	}
}

func TestWords_Errors(t *testing.T) {
	_, err := builder.Build(builder.Words())
	assert.ErrorIs(t, err, builder.ErrEmptyWord)

	_, err = builder.Build(builder.Words("ok", ""))
	assert.ErrorIs(t, err, builder.ErrEmptyWord)
}

func TestDeclare(t *testing.T) {
	f, err := builder.Build()
	require.NoError(t, err)

	id, err := f.Declare("q")
	require.NoError(t, err)
	assert.Equal(t, nfa.StateID(0), id)

	_, err = f.Declare("q")
	assert.ErrorIs(t, err, builder.ErrDuplicateState)
	_, err = f.Declare("")
	assert.ErrorIs(t, err, builder.ErrEmptyStateName)
}
