// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"
)

// Mermaid writes v as a Mermaid flowchart.
//
// Shapes:
//   - state: ((circle))
//   - goal:  (((double circle)))
//   - start: an unlabeled circle pointing at the start state
func Mermaid(w io.Writer, v View, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "graph %s\n", o.Direction)
	if v.Name != "" {
		fmt.Fprintf(&b, "    %%%% %s\n", v.Name)
	}

	for _, id := range v.States {
		label := mermaidLabel(o.StateLabel(id))
		if v.Goals[id] {
			fmt.Fprintf(&b, "    s%d(((\"%s\")))\n", id, label)
		} else {
			fmt.Fprintf(&b, "    s%d((\"%s\"))\n", id, label)
		}
	}
	if v.HasStart {
		fmt.Fprintf(&b, "    start((\" \")) --> s%d\n", v.Start)
	}
	for _, e := range v.Edges {
		fmt.Fprintf(&b, "    s%d -- \"%s\" --> s%d\n", e.From, mermaidLabel(e.Label), e.To)
	}

	_, err = io.WriteString(w, b.String())

	return err
}

// mermaidLabel makes s safe inside a double-quoted Mermaid label.
func mermaidLabel(s string) string {
	r := strings.NewReplacer(`"`, "#quot;", "<", "#lt;", ">", "#gt;", "\n", " ")

	return r.Replace(s)
}
