// Package report formats analysis results for display.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/hurou927/netgraph/internal/analysis"
)

// Supported output formats.
const (
	FormatText     = "text"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatMermaid  = "mermaid"
	FormatDOT      = "dot"
	FormatSVG      = "svg"
)

// Formats lists every supported format.
var Formats = []string{FormatText, FormatTable, FormatMarkdown, FormatCSV, FormatMermaid, FormatDOT, FormatSVG}

// Options configures Write.
type Options struct {
	Format string
	// Color enables terminal styling in the text format.
	Color bool
}

// Write formats res to w.
func Write(ctx context.Context, w io.Writer, res *analysis.Result, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return WriteText(w, res, opts.Color)
	case FormatTable, FormatMarkdown:
		return WriteTables(w, res, opts.Format)
	case FormatCSV:
		return WriteCSV(w, res)
	case FormatMermaid:
		return WriteMermaid(w, res)
	case FormatDOT:
		_, err := io.WriteString(w, ToDOT(res))
		return err
	case FormatSVG:
		svg, err := RenderSVG(ctx, ToDOT(res))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	default:
		return fmt.Errorf("unknown format: %s (supported: %v)", opts.Format, Formats)
	}
}
