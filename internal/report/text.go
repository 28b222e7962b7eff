package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hurou927/netgraph/internal/analysis"
	"github.com/hurou927/netgraph/internal/graph"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
)

// styler applies terminal styles, or nothing when color is off.
type styler struct {
	title   func(string) string
	number  func(string) string
	success func(string) string
	warning func(string) string
	dim     func(string) string
}

func newStyler(w io.Writer, color bool) styler {
	if !color {
		plain := func(s string) string { return s }
		return styler{title: plain, number: plain, success: plain, warning: plain, dim: plain}
	}
	r := lipgloss.NewRenderer(w)
	render := func(st lipgloss.Style) func(string) string {
		return func(s string) string { return st.Render(s) }
	}
	return styler{
		title:   render(r.NewStyle().Bold(true).Foreground(colorCyan)),
		number:  render(r.NewStyle().Foreground(colorCyan)),
		success: render(r.NewStyle().Foreground(colorGreen)),
		warning: render(r.NewStyle().Foreground(colorYellow)),
		dim:     render(r.NewStyle().Foreground(colorGray)),
	}
}

// WriteText writes a human-readable summary of res to w.
func WriteText(w io.Writer, res *analysis.Result, color bool) error {
	st := newStyler(w, color)
	num := func(n int) string { return st.number(strconv.Itoa(n)) }

	var b strings.Builder
	fmt.Fprintf(&b, "Devices: %s\n", num(res.Devices))
	fmt.Fprintf(&b, "Links: %s\n", num(res.Links))
	fmt.Fprintf(&b, "Connected components: %s\n\n", num(len(res.Components)))

	for i, c := range res.Components {
		fmt.Fprintf(&b, "%s\n", st.title(fmt.Sprintf("Component %d (%d devices):", i, c.Size())))
		for _, line := range Pyramid(c.Devices) {
			fmt.Fprintln(&b, line)
		}
		fmt.Fprintln(&b)
	}

	if len(res.LinkPaths) > 0 {
		fmt.Fprintln(&b, st.title("Shortest paths between linked devices:"))
		for _, p := range res.LinkPaths {
			fmt.Fprintf(&b, "  %d-%d: %s\n", p.From, p.To, p.Path)
		}
		fmt.Fprintln(&b)
	}

	writeQueries(&b, st, "Paths:", res.Queries)

	if res.Connected {
		if len(res.Suggestions) == 0 {
			fmt.Fprintln(&b, st.success("All devices are already connected."))
		} else {
			fmt.Fprintf(&b, "%s\n", st.warning(fmt.Sprintf("Connecting the network requires %d link(s).", len(res.Suggestions))))
			for _, e := range res.Suggestions {
				fmt.Fprintf(&b, "  link device %s with device %s\n", num(e.A), num(e.B))
			}
			fmt.Fprintf(&b, "Connected components after linking: %s\n", num(len(res.ComponentsAfter)))
		}
		fmt.Fprintln(&b)
		writeQueries(&b, st, "Paths after linking:", res.After)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeQueries(b *strings.Builder, st styler, title string, queries []analysis.QueryResult) {
	if len(queries) == 0 {
		return
	}
	fmt.Fprintln(b, st.title(title))
	for _, q := range queries {
		if !q.Reachable() {
			fmt.Fprintf(b, "  %d to %d: %s\n", q.From, q.To, st.warning("no path"))
			continue
		}
		fmt.Fprintf(b, "  %d to %d: %s %s\n", q.From, q.To, q.Path,
			st.dim(fmt.Sprintf("(%d hops, eccentricity %d)", q.Path.Hops(), q.Eccentricity)))
	}
	fmt.Fprintln(b)
}

// Pyramid lays devices out in centred rows of 1, 3, 5, ... entries. The
// last row may be partial.
func Pyramid(devices []int) []string {
	levels := 0
	for levels*levels < len(devices) {
		levels++
	}

	var lines []string
	idx := 0
	for level := 1; idx < len(devices); level++ {
		row := make([]string, 0, 2*level-1)
		for j := 0; j < 2*level-1 && idx < len(devices); j++ {
			row = append(row, strconv.Itoa(devices[idx]))
			idx++
		}
		lines = append(lines, strings.Repeat(" ", levels-level)+strings.Join(row, " "))
	}
	return lines
}

// pathString formats an optional path for tables.
func pathString(p graph.Path, err error) string {
	if err != nil {
		return "no path"
	}
	return p.String()
}
