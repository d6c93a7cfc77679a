// SPDX-License-Identifier: MIT
// Package: fsa/builder
//
// description.go - YAML/JSON automaton descriptions.
//
// Format (YAML shown; JSON uses the same keys):
//
//	name: m-or-c
//	start: S0
//	goals: [S3]
//	states: [S0, S10, S17, S20, S28, S3]
//	edges:
//	  - {from: S0, to: S10}             # no label: epsilon
//	  - {from: S10, label: m, to: S17}
//
// Every name used by start, goals or edges must appear in states.

package builder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fsa/nfa"
)

// Supported description formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// EdgeSpec is one edge of a Description. A nil Label means epsilon.
type EdgeSpec struct {
	From  string  `yaml:"from" json:"from"`
	Label *string `yaml:"label,omitempty" json:"label,omitempty"`
	To    string  `yaml:"to" json:"to"`
}

// Description is the file form of an automaton with named states.
type Description struct {
	Name   string     `yaml:"name" json:"name"`
	Start  string     `yaml:"start" json:"start"`
	Goals  []string   `yaml:"goals" json:"goals"`
	States []string   `yaml:"states" json:"states"`
	Edges  []EdgeSpec `yaml:"edges" json:"edges"`
}

// Load reads a description file, decoding JSON for a .json extension and YAML
// otherwise.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}

	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Parse decodes data in the given format. Unknown fields are rejected.
func Parse(data []byte, format string) (*Description, error) {
	var d Description
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse yaml description: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to parse json description: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return &d, nil
}

// FromDescription returns a Constructor that declares the described states in
// order and wires edges, start and goals.
//
// Errors:
//   - ErrEmptyStateName, ErrDuplicateState for bad state declarations.
//   - ErrUnknownState when start, a goal or an edge endpoint is undeclared.
func FromDescription(d *Description) Constructor {
	return func(f *Fixture) error {
		for _, name := range d.States {
			if _, err := f.Declare(name); err != nil {
				return fmt.Errorf("states: %w", err)
			}
		}

		for i, e := range d.Edges {
			from, err := f.resolve(e.From)
			if err != nil {
				return fmt.Errorf("edges[%d].from: %w", i, err)
			}
			to, err := f.resolve(e.To)
			if err != nil {
				return fmt.Errorf("edges[%d].to: %w", i, err)
			}
			label := nfa.Epsilon[string]()
			if e.Label != nil {
				label = nfa.Value(*e.Label)
			}
			f.NFA.Link(from, label, to)
		}

		if d.Start != "" {
			start, err := f.resolve(d.Start)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			f.NFA.SetStart(start)
		}

		for i, name := range d.Goals {
			goal, err := f.resolve(name)
			if err != nil {
				return fmt.Errorf("goals[%d]: %w", i, err)
			}
			f.NFA.AddGoal(goal)
		}

		return nil
	}
}

// LoadFixture loads a description file and builds it.
func LoadFixture(path string) (*Fixture, error) {
	d, err := Load(path)
	if err != nil {
		return nil, err
	}

	return Build(FromDescription(d))
}
