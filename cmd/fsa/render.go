// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsa/nfa"
	"github.com/katalvlaran/fsa/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Export the NFA described by FILE",
		Long:  `Loads an automaton description and outputs it, epsilon edges included, as a DOT or Mermaid diagram.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}
			v := render.NFAView(graphName(args[0], "NFA"), f.NFA)

			return out.write(cmd, v, render.WithStateLabel(func(id uint) string {
				return f.Name(nfa.StateID(id))
			}))
		},
	}
	out.register(cmd)

	return cmd
}

// graphName derives a diagram name from the file name.
func graphName(path, fallback string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if base == "" || base == "." {
		return fallback
	}

	return fallback + " " + base
}
