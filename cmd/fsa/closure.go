// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsa/builder"
	"github.com/katalvlaran/fsa/nfa"
	"github.com/katalvlaran/fsa/subset"
)

func newClosureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "closure FILE STATE...",
		Short: "Print the epsilon-closure of the named states",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}

			ids := make([]nfa.StateID, 0, len(args)-1)
			for _, name := range args[1:] {
				id, ok := f.ID(name)
				if !ok {
					return fmt.Errorf("%w: %q", builder.ErrUnknownState, name)
				}
				ids = append(ids, id)
			}

			closure := subset.Closure(f.NFA, subset.NewStateSet(ids...))
			names := make([]string, len(closure))
			for i, id := range closure {
				names[i] = f.Name(id)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))

			return err
		},
	}
}
