package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hurou927/netgraph/internal/analysis"
)

// WriteTables writes res as a series of titled tables rendered in the
// given format: table or markdown.
func WriteTables(w io.Writer, res *analysis.Result, format string) error {
	components := table.NewWriter()
	components.AppendHeader(table.Row{"#", "Size", "Devices"})
	for i, c := range res.Components {
		components.AppendRow(table.Row{i, c.Size(), joinInts(c.Devices)})
	}

	paths := table.NewWriter()
	paths.AppendHeader(table.Row{"Stage", "From", "To", "Path", "Hops"})
	appendQueries(paths, "before", res.Queries)
	appendQueries(paths, "after", res.After)

	links := table.NewWriter()
	links.AppendHeader(table.Row{"#", "From", "To"})
	for i, e := range res.Suggestions {
		links.AppendRow(table.Row{i + 1, e.A, e.B})
	}

	sections := []struct {
		title string
		t     table.Writer
	}{
		{title: fmt.Sprintf("Components (%d devices, %d links)", res.Devices, res.Links), t: components},
		{title: "Paths", t: paths},
		{title: "Suggested links", t: links},
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		// Titles go above the table; go-pretty wraps a title wider than
		// the table itself.
		switch format {
		case FormatTable:
			b.WriteString(s.title + "\n" + s.t.Render() + "\n")
		case FormatMarkdown:
			b.WriteString("### " + s.title + "\n\n" + s.t.RenderMarkdown() + "\n")
		default:
			return fmt.Errorf("unknown table format: %s", format)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCSV writes res as one CSV table. The Section column tells
// components, queries before and after linking, and suggested links apart;
// columns that do not apply to a section are empty.
func WriteCSV(w io.Writer, res *analysis.Result) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Section", "#", "From", "To", "Size", "Devices", "Path", "Hops"})
	for i, c := range res.Components {
		t.AppendRow(table.Row{"component", i, "", "", c.Size(), joinInts(c.Devices), "", ""})
	}
	for stage, queries := range [][]analysis.QueryResult{res.Queries, res.After} {
		section := "path before"
		if stage == 1 {
			section = "path after"
		}
		for i, q := range queries {
			t.AppendRow(table.Row{section, i + 1, q.From, q.To, "", "", pathString(q.Path, q.Err), hops(q)})
		}
	}
	for i, e := range res.Suggestions {
		t.AppendRow(table.Row{"suggested link", i + 1, e.A, e.B, "", "", "", ""})
	}

	_, err := fmt.Fprintln(w, t.RenderCSV())
	return err
}

func appendQueries(t table.Writer, stage string, queries []analysis.QueryResult) {
	for _, q := range queries {
		t.AppendRow(table.Row{stage, q.From, q.To, pathString(q.Path, q.Err), hops(q)})
	}
}

// hops returns the hop count of a query, or "-" when it has no path.
func hops(q analysis.QueryResult) string {
	if !q.Reachable() {
		return "-"
	}
	return fmt.Sprint(q.Path.Hops())
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
