// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"
)

// DOT writes v as a Graphviz digraph.
//
// States are named state_<id>; goals are drawn as double circles and the
// start state gets an arrow from an invisible point node. The output can be
// fed to `dot -Tsvg`.
func DOT(w io.Writer, v View, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", dotQuote(v.Name))
	fmt.Fprintf(&b, "\trankdir=%s;\n", o.Direction)
	b.WriteString("\tnode [shape=circle];\n")

	if v.HasStart {
		b.WriteString("\t__start [shape=point];\n")
	}
	for _, id := range v.States {
		fmt.Fprintf(&b, "\tstate_%d [label=%s", id, dotQuote(o.StateLabel(id)))
		if v.Goals[id] {
			b.WriteString(", shape=doublecircle")
		}
		b.WriteString("];\n")
	}
	if v.HasStart {
		fmt.Fprintf(&b, "\t__start -> state_%d;\n", v.Start)
	}
	for _, e := range v.Edges {
		fmt.Fprintf(&b, "\tstate_%d -> state_%d [label=%s];\n", e.From, e.To, dotQuote(e.Label))
	}
	b.WriteString("}\n")

	_, err = io.WriteString(w, b.String())

	return err
}

// dotQuote returns s as a DOT double-quoted string.
func dotQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

	return `"` + r.Replace(s) + `"`
}
