package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/hurou927/netgraph/internal/analysis"
	"github.com/hurou927/netgraph/internal/graph"
)

// WriteMermaid writes the network in Mermaid format to w.
// Each connected component is a subgraph; suggested links are drawn
// dotted between subgraphs.
func WriteMermaid(w io.Writer, res *analysis.Result) error {
	var b strings.Builder
	b.WriteString("graph LR\n")

	byComponent := edgesByComponent(res)

	for i, comp := range res.Components {
		fmt.Fprintf(&b, "    subgraph component_%d\n", i)

		// Standalone devices have no link to declare them.
		for _, d := range comp.Devices {
			fmt.Fprintf(&b, "        %s((%d))\n", mermaidID(d), d)
		}
		for _, e := range byComponent[i] {
			fmt.Fprintf(&b, "        %s --- %s\n", mermaidID(e.A), mermaidID(e.B))
		}

		b.WriteString("    end\n")
		if i < len(res.Components)-1 {
			b.WriteString("\n")
		}
	}

	for _, e := range res.Suggestions {
		fmt.Fprintf(&b, "    %s -.-|suggested| %s\n", mermaidID(e.A), mermaidID(e.B))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// edgesByComponent groups the pre-connection links by the component holding
// them.
func edgesByComponent(res *analysis.Result) map[int][]graph.Edge {
	owner := make(map[int]int, res.Devices)
	for i, c := range res.Components {
		for _, d := range c.Devices {
			owner[d] = i
		}
	}
	out := make(map[int][]graph.Edge, len(res.Components))
	for _, e := range res.Edges {
		out[owner[e.A]] = append(out[owner[e.A]], e)
	}
	return out
}

// mermaidID converts a device index to a Mermaid-safe node ID.
func mermaidID(device int) string {
	return fmt.Sprintf("d%d", device)
}
