package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hurou927/netgraph/internal/analysis"
	"github.com/hurou927/netgraph/internal/report"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		src         source
		queries     []string
		interactive bool
		noConnect   bool
		format      string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Find components and shortest paths, and connect the network",
		Long: `Builds a network, lists its connected components and the shortest path
between the endpoints of every link, answers path queries, and suggests the
links that connect all components. Queries are answered again once the
suggested links are in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			qs, err := parseQueries(queries)
			if err != nil {
				return err
			}

			g, err := src.load(ctx, a.cfg)
			if err != nil {
				return err
			}

			if interactive {
				q, err := promptQuery(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				qs = append(qs, q)
			}

			res, err := analysis.Run(g, analysis.Options{
				Queries:     qs,
				SkipConnect: noConnect,
				Logger:      logger,
			})
			if err != nil {
				return err
			}

			if format == "" {
				format = a.cfg.Report.Format
			}
			w, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if err := report.Write(ctx, w, res, report.Options{Format: format, Color: a.cfg.Report.Color}); err != nil {
				closeOut()
				return fmt.Errorf("writing report: %w", err)
			}
			if err := closeOut(); err != nil {
				return err
			}
			if output != "" && output != "-" {
				logger.Info("Report written", "path", output, "format", format)
			}
			return nil
		},
	}

	src.addFlags(cmd)
	f := cmd.Flags()
	f.StringArrayVar(&queries, "query", nil, "shortest path query FROM,TO (repeatable)")
	f.BoolVar(&interactive, "interactive", false, "prompt for a source and destination device")
	f.BoolVar(&noConnect, "no-connect", false, "do not add links to connect the network")
	f.StringVar(&format, "format", "", fmt.Sprintf("output format %v (default from config)", report.Formats))
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
