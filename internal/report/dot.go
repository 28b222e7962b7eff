package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/hurou927/netgraph/internal/analysis"
)

// ToDOT converts the network to an undirected Graphviz graph with one
// cluster per component. Suggested links are dashed.
func ToDOT(res *analysis.Result) string {
	var buf bytes.Buffer
	buf.WriteString("graph network {\n")
	buf.WriteString("  layout=dot;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	for i, c := range res.Components {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("component %d", i))
		ids := make([]string, len(c.Devices))
		for j, d := range c.Devices {
			ids[j] = fmt.Sprintf("%q", fmt.Sprint(d))
		}
		fmt.Fprintf(&buf, "    %s;\n", strings.Join(ids, "; "))
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, e := range res.Edges {
		fmt.Fprintf(&buf, "  \"%d\" -- \"%d\";\n", e.A, e.B)
	}
	for _, e := range res.Suggestions {
		fmt.Fprintf(&buf, "  \"%d\" -- \"%d\" [style=dashed, color=red];\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
