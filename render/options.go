// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("render: invalid option supplied")

// Option configures a render call.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// StateLabel names a state in the diagram. Defaults to the decimal id.
	StateLabel func(id uint) string

	// Direction is the layout direction: LR, RL, TB or BT.
	Direction string

	err error
}

// DefaultOptions labels states by id and lays diagrams out left to right.
func DefaultOptions() Options {
	return Options{
		StateLabel: func(id uint) string { return strconv.FormatUint(uint64(id), 10) },
		Direction:  "LR",
	}
}

// WithStateLabel sets the function naming states. nil is ignored.
func WithStateLabel(fn func(id uint) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.StateLabel = fn
		}
	}
}

// WithDirection sets the layout direction (LR, RL, TB, BT).
func WithDirection(dir string) Option {
	return func(o *Options) {
		switch dir {
		case "LR", "RL", "TB", "BT":
			o.Direction = dir
		default:
			o.err = fmt.Errorf("%w: unknown direction %q", ErrOptionViolation, dir)
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}
