// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fsa/builder"
	"github.com/katalvlaran/fsa/subset"
)

var fixture = filepath.Join("testdata", "m_or_c.json")

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestClosureCmd(t *testing.T) {
	out, _, err := run(t, "closure", fixture, "S0")
	require.NoError(t, err)
	assert.Equal(t, "S0 S10 S20\n", out)

	out, _, err = run(t, "closure", fixture, "S17", "S28")
	require.NoError(t, err)
	assert.Equal(t, "S17 S28 S3\n", out)

	_, _, err = run(t, "closure", fixture, "nope")
	assert.ErrorIs(t, err, builder.ErrUnknownState)
}

func TestRenderCmd(t *testing.T) {
	out, _, err := run(t, "render", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, `digraph "NFA m_or_c" {`)
	assert.Contains(t, out, `state_0 [label="S0"];`)
	assert.Contains(t, out, `state_5 [label="S3", shape=doublecircle];`)
	assert.Contains(t, out, `state_0 -> state_1 [label="<epsilon>"];`)
}

func TestDeterminizeCmd(t *testing.T) {
	out, stderr, err := run(t, "determinize", fixture, "--names", "--format", "mermaid", "--direction", "TB", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TB")
	assert.Contains(t, out, `s0(("{S0,S10,S20}"))`)
	assert.Contains(t, out, `s1((("{S17,S3}")))`)
	assert.Contains(t, out, `s2((("{S28,S3}")))`)
	assert.Contains(t, out, `s0 -- "m" --> s1`)
	assert.Contains(t, stderr, "dfa state created")
	assert.Contains(t, stderr, "dfa built")
}

func TestDeterminizeCmd_OutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfa.dot")
	out, _, err := run(t, "determinize", fixture, "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `state_0 -> state_1 [label="m"];`)
	assert.Contains(t, string(data), `state_2 [label="2", shape=doublecircle];`)
}

func TestCommandErrors(t *testing.T) {
	_, _, err := run(t, "determinize", fixture, "--max-states", "2")
	assert.ErrorIs(t, err, subset.ErrStateLimit)

	_, _, err = run(t, "render", fixture, "--format", "svg")
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = run(t, "render", fixture, "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown log level")

	_, _, err = run(t, "render", filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "render")
	assert.Error(t, err)
}

func TestDeterminizeCmd_NoStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nostart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("states: [a]\n"), 0o644))

	_, _, err := run(t, "determinize", path)
	assert.ErrorIs(t, err, subset.ErrNoStartState)
}
