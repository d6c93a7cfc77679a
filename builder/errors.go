// SPDX-License-Identifier: MIT
// Package: fsa/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (file, edge index, state name) is attached with %w wrapping.
//   • The nfa package itself stays lenient; strictness lives here, at the
//     boundary where human-written descriptions enter.

package builder

import "errors"

// ErrUnknownState indicates a description referenced a state name that was
// never declared.
var ErrUnknownState = errors.New("builder: unknown state")

// ErrDuplicateState indicates a state name was declared twice.
var ErrDuplicateState = errors.New("builder: duplicate state")

// ErrEmptyStateName indicates a state was declared with an empty name.
var ErrEmptyStateName = errors.New("builder: empty state name")

// ErrEmptyWord indicates Words was given no words, or an empty one.
var ErrEmptyWord = errors.New("builder: empty word")

// ErrUnsupportedFormat indicates a description format other than yaml/json.
var ErrUnsupportedFormat = errors.New("builder: unsupported format")

// ErrConstructFailed indicates a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
