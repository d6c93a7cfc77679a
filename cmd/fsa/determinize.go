// SPDX-License-Identifier: MIT

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsa/dfa"
	"github.com/katalvlaran/fsa/render"
	"github.com/katalvlaran/fsa/subset"
)

func newDeterminizeCmd(a *app) *cobra.Command {
	var (
		out       outputFlags
		maxStates int
		names     bool
	)
	cmd := &cobra.Command{
		Use:   "determinize FILE",
		Short: "Convert the NFA described by FILE into a DFA",
		Long:  `Runs subset construction on the described NFA and outputs the resulting DFA as a DOT or Mermaid diagram.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}

			res, err := subset.Construct(f.NFA,
				subset.WithLogger(a.log),
				subset.WithMaxStates(maxStates),
			)
			if err != nil {
				return err
			}
			a.log.Info("dfa built", "states", res.DFA.Len(), "goals", len(res.DFA.GoalIDs()))

			label := func(id uint) string { return strconv.FormatUint(uint64(id), 10) }
			if names {
				label = func(id uint) string {
					set := res.Sets[dfa.StateID(id)]
					parts := make([]string, len(set))
					for i, member := range set {
						parts[i] = f.Name(member)
					}
					return "{" + strings.Join(parts, ",") + "}"
				}
			}

			return out.write(cmd, render.DFAView(graphName(args[0], "DFA"), res.DFA), render.WithStateLabel(label))
		},
	}
	out.register(cmd)
	cmd.Flags().IntVar(&maxStates, "max-states", 0, "abort if the DFA would exceed this many states (0 = no limit)")
	cmd.Flags().BoolVar(&names, "names", false, "label DFA states with the NFA states they stand for")

	return cmd
}
