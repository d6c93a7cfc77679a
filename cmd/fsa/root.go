// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsa/builder"
	"github.com/katalvlaran/fsa/internal/logging"
	"github.com/katalvlaran/fsa/render"
)

// app carries state shared by subcommands.
type app struct {
	logLevel string
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}

	root := &cobra.Command{
		Use:           "fsa",
		Short:         "Finite automata toolkit",
		Long:          `fsa builds NFAs from YAML/JSON descriptions, converts them to DFAs by subset construction and exports DOT or Mermaid diagrams.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = logging.NewWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newRenderCmd(a), newDeterminizeCmd(a), newClosureCmd(a))

	return root
}

// outputFlags are shared by commands that emit a diagram.
type outputFlags struct {
	format    string
	out       string
	direction string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "dot", "diagram format: dot or mermaid")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&o.direction, "direction", "LR", "layout direction: LR, RL, TB, BT")
}

// write renders v in the selected format to stdout or the --out file.
func (o *outputFlags) write(cmd *cobra.Command, v render.View, opts ...render.Option) error {
	var fn func(io.Writer, render.View, ...render.Option) error
	switch o.format {
	case "dot":
		fn = render.DOT
	case "mermaid":
		fn = render.Mermaid
	default:
		return fmt.Errorf("unknown format %q (want dot or mermaid)", o.format)
	}
	opts = append(opts, render.WithDirection(o.direction))

	if o.out == "" {
		return fn(cmd.OutOrStdout(), v, opts...)
	}

	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := fn(f, v, opts...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// load reads a description file and logs what was built.
func (a *app) load(path string) (*builder.Fixture, error) {
	f, err := builder.LoadFixture(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("automaton loaded", "path", path, "states", f.NFA.Len(), "goals", len(f.NFA.GoalIDs()))

	return f, nil
}
